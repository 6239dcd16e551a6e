// values-demo walks a small container with every cursor kind and logs what it sees.
package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/values/pkg/cursorkit"
	"go.llib.dev/values/pkg/datastruct"
)

const ErrNoValues errorkit.Error = "at least one value is required"

type Config struct {
	Values    []string `env:"VALUES_DEMO_VALUES" default:"String 1,String 2,String 3"`
	FillValue string   `env:"VALUES_DEMO_FILL" default:"String 4"`
	LogLevel  string   `env:"LOG_LEVEL" default:"info"`
}

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "values-demo"))
	var c Config
	if err := env.Load(&c); err != nil {
		logger.Fatal(ctx, "failed to load configuration", logging.ErrField(err))
		os.Exit(1)
	}
	l := &logging.Logger{Out: os.Stdout, Level: logging.Level(c.LogLevel)}
	if err := Main(ctx, l, c); err != nil {
		l.Fatal(ctx, "error in main", logging.ErrField(err))
		os.Exit(1)
	}
}

type Val = datastruct.Value[string]

func Main(ctx context.Context, l *logging.Logger, c Config) error {
	if len(c.Values) == 0 {
		return ErrNoValues
	}

	var cont datastruct.Values[Val]
	for _, v := range c.Values {
		cont.Append(datastruct.MakeValue(v))
	}

	l.Info(ctx, "values using a forward iterator", valuesField(cursorkit.Collect[Val](cont.Begin(), cont.End())))
	l.Info(ctx, "values using a reverse iterator", valuesField(cursorkit.Collect[Val](cont.RBegin(), cont.REnd())))

	cSimp := cont.Clone()
	l.Info(ctx, "values from a const container", valuesField(cursorkit.Collect[Val](cSimp.CBegin(), cSimp.CEnd())))
	l.Info(ctx, "values using a constant reverse iterator", valuesField(cursorkit.Collect[Val](cSimp.CRBegin(), cSimp.CREnd())))

	cont2 := cont.Clone()
	l.Info(ctx, "contents of the copy", valuesField(cont2.ToSlice()))

	cursorkit.ReverseCopy[Val](cont.Begin(), cont.End(), cont2.Begin())
	l.Info(ctx, "contents of the copy after reverse copy", valuesField(cont2.ToSlice()))

	cursorkit.Fill(cont2.Begin(), cont2.End(), datastruct.MakeValue(c.FillValue))
	l.Info(ctx, "contents of the copy after fill", valuesField(cont2.ToSlice()))

	cursorkit.Copy[Val](cont.Begin(), cont.End(), cursorkit.Inserter(cont2, cont2.CBegin().Succ()))
	l.Info(ctx, "contents of the copy after copy with inserter", valuesField(cont2.ToSlice()))

	if _, err := cont.At(cont.Len()); err != nil {
		l.Debug(ctx, "checked access past the end is rejected", logging.ErrField(err))
	}
	return nil
}

func valuesField(vs []Val) logging.Detail {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Get())
	}
	return logging.Field("values", out)
}
