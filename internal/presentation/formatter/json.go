package formatter

import (
	"io"

	"github.com/bytedance/sonic"
)

type JSONFormatter struct {
	out io.Writer
}

func NewJSONFormatter(out io.Writer) *JSONFormatter {
	return &JSONFormatter{out: out}
}

func (f *JSONFormatter) Format(data []CommandSummary) error {
	buf, err := sonic.ConfigDefault.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.out.Write(append(buf, '\n'))
	return err
}
