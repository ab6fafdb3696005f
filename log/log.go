package log

import (
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
)

var Log *logrus.Entry

func init() {
	l := logrus.New()
	l.SetFormatter(&nested.Formatter{
		HideKeys:    false,
		FieldsOrder: []string{"proc", "host"},
		NoColors:    true,
	})
	Log = l.WithField("proc", "MCPINGD")
}

func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Log.Logger.SetLevel(lvl)
	return nil
}
