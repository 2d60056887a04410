package lumber

import (
	"testing"
)

func TestNewLogger(t *testing.T) {
	cfg := LoggingConfig{EnableConsole: true, ConsoleLevel: Info}
	tests := []struct {
		name     string
		instance int
		wantErr  bool
	}{
		{name: "zap", instance: InstanceZapLogger},
		{name: "logrus", instance: InstanceLogrusLogger},
		{name: "unknown", instance: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(cfg, false, tt.instance)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			logger.WithFields(Fields{"bucket": 1}).Debugf("bucket %d", 1)
		})
	}
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := NewLogger(LoggingConfig{EnableConsole: true, ConsoleLevel: "loud"}, false, InstanceLogrusLogger)
	if err == nil {
		t.Errorf("expected error for unknown logrus level")
	}
}
