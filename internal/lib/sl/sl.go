package sl

import (
	"log/slog"
)

func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("")}
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

func Module(mod string) slog.Attr {
	return slog.Attr{
		Key:   "module",
		Value: slog.StringValue(mod),
	}
}

// Secret logs only a short prefix of sensitive values.
func Secret(key, value string) slog.Attr {
	if len(value) > 4 {
		value = value[:4] + "***"
	} else if value != "" {
		value = "***"
	}
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue(value),
	}
}
