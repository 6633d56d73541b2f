package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"JWT_EXPIRES_IN", "ADMIN_EMAIL", "OPERATOR_EMAIL", "SENDGRID_API_KEY", "APP_ENV", "NODE_ENV", "RATE_LIMIT_WINDOW_MS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.AdminEmail != "admin@goldenpays.uk" {
		t.Fatalf("unexpected admin email %q", cfg.Auth.AdminEmail)
	}
	if cfg.Mail.OperatorEmail != cfg.Auth.AdminEmail {
		t.Fatalf("operator email should fall back to admin email")
	}
	if cfg.Mail.HasProvider() {
		t.Fatalf("no provider expected without SENDGRID_API_KEY")
	}
	if cfg.HTTP.RateLimitWindow != 15*time.Minute {
		t.Fatalf("expected 15m window, got %s", cfg.HTTP.RateLimitWindow)
	}
	if cfg.App.IsProduction() {
		t.Fatalf("development expected by default")
	}
}

func TestLoad_TokenTTL(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{value: "2h", want: 2 * time.Hour},
		{value: "7d", want: 7 * 24 * time.Hour},
		{value: "soon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("JWT_EXPIRES_IN", tt.value)
			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Auth.TokenTTL != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, cfg.Auth.TokenTTL)
			}
		})
	}
}

func TestMailConfig_HasProvider(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "", want: false},
		{key: "   ", want: false},
		{key: placeholderSendGridKey, want: false},
		{key: "SG.real-key", want: true},
	}
	for _, tt := range tests {
		if got := (MailConfig{SendGridAPIKey: tt.key}).HasProvider(); got != tt.want {
			t.Fatalf("HasProvider(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
