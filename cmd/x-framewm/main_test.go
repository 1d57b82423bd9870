package main

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ItsNotGoodName/x-framewm/internal/config"
	"github.com/ItsNotGoodName/x-framewm/internal/logging"
	"github.com/ItsNotGoodName/x-framewm/internal/xwm"
	"github.com/jezek/xgb/xproto"
)

func TestApplyOptions(t *testing.T) {
	base := config.Config{Display: ":1", QuitKey: 37, Adopt: true}

	tests := []struct {
		name    string
		options Options
		want    config.Config
		wantErr bool
	}{
		{"unset", Options{QuitKey: -1}, base, false},
		{"display", Options{Display: ":2", QuitKey: -1}, config.Config{Display: ":2", QuitKey: 37, Adopt: true}, false},
		{"disable quit key", Options{QuitKey: 0}, config.Config{Display: ":1", QuitKey: 0, Adopt: true}, false},
		{"highest keycode", Options{QuitKey: 255}, config.Config{Display: ":1", QuitKey: 255, Adopt: true}, false},
		{"keycode too large", Options{QuitKey: 256}, base, true},
		{"negative keycode", Options{QuitKey: -2}, base, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			err := applyOptions(&cfg, &tt.options)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyOptions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if cfg != tt.want {
				t.Errorf("applyOptions() cfg = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestLogFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "already running",
			err:  xwm.AlreadyRunningError{Code: xproto.BadAccess, Err: xproto.AccessError{}},
			want: []string{"Another window manager is already running", "code", "10"},
		},
		{
			name: "other",
			err:  errors.New("connection refused"),
			want: []string{"Window manager failed", "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(slog.New(logging.NewHandler(&out, &errOut, slog.LevelInfo)))
			defer slog.SetDefault(prev)

			logFatal(tt.err)

			if out.Len() != 0 {
				t.Errorf("stdout = %q, want nothing", out.String())
			}
			for _, want := range tt.want {
				if !strings.Contains(errOut.String(), want) {
					t.Errorf("stderr = %q, want it to contain %q", errOut.String(), want)
				}
			}
		})
	}
}
