package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Control.StartDelay != time.Second {
		t.Errorf("Control.StartDelay = %v, want 1s", cfg.Control.StartDelay)
	}
	if cfg.Operator.Token == "" {
		t.Error("Operator.Token is empty, want local token")
	}
}

func TestLoad_CompetitionProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("competition")
	if err != nil {
		t.Fatalf("Load(\"competition\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for competition")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Vision.MissingLandmark != "hold" {
		t.Errorf("Vision.MissingLandmark = %q, want \"hold\"", cfg.Vision.MissingLandmark)
	}
}

func TestLoad_DefaultsAndBaseInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// From base.yaml.
	if cfg.Drive.TicksPerRev != 537.6 {
		t.Errorf("Drive.TicksPerRev = %v, want 537.6 (from base)", cfg.Drive.TicksPerRev)
	}
	if cfg.Device.CircuitBreaker.MaxFailures != 3 {
		t.Errorf("Device.CircuitBreaker.MaxFailures = %d, want 3 (from base)",
			cfg.Device.CircuitBreaker.MaxFailures)
	}
	if len(cfg.Sim.Landmarks) != 2 {
		t.Errorf("len(Sim.Landmarks) = %d, want 2 (from base)", len(cfg.Sim.Landmarks))
	}
	if got := cfg.Arm.Presets["higher_basket"].Slide; got != 2600 {
		t.Errorf("Arm.Presets[higher_basket].Slide = %d, want 2600 (from base)", got)
	}

	// From built-in defaults only.
	if cfg.Drive.StrafeSlip != 1.05 {
		t.Errorf("Drive.StrafeSlip = %v, want 1.05 (default)", cfg.Drive.StrafeSlip)
	}
	if cfg.Arm.ServoSettle != 500*time.Millisecond {
		t.Errorf("Arm.ServoSettle = %v, want 500ms (default)", cfg.Arm.ServoSettle)
	}
	if cfg.Control.Mode != config.ModeAutonomous {
		t.Errorf("Control.Mode = %q, want %q (default)", cfg.Control.Mode, config.ModeAutonomous)
	}
	if cfg.Control.InputTimeout != 500*time.Millisecond {
		t.Errorf("Control.InputTimeout = %v, want 500ms", cfg.Control.InputTimeout)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CONTROL_START_DELAY", "4s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 4 * time.Second
	if cfg.Control.StartDelay != want {
		t.Errorf("Control.StartDelay = %v, want %v (env override)", cfg.Control.StartDelay, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_DEVICE_CIRCUIT_BREAKER_MAX_FAILURES", "7")
	t.Setenv("APP_ARM_PRESETS_INTAKE_SHOULDER", "250")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Device.CircuitBreaker.MaxFailures != 7 {
		t.Errorf("Device.CircuitBreaker.MaxFailures = %d, want 7 (env override)",
			cfg.Device.CircuitBreaker.MaxFailures)
	}
	if got := cfg.Arm.Presets["intake"].Shoulder; got != 250 {
		t.Errorf("Arm.Presets[intake].Shoulder = %d, want 250 (env override)", got)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "invalid port", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: true,
		},
		{name: "unknown mode", mutate: func(c *config.Config) { c.Control.Mode = "auto" }, wantErr: true},
		{name: "autonomous without routine", mutate: func(c *config.Config) { c.Control.Routine = "" }, wantErr: true},
		{
			name: "teleop without routine",
			mutate: func(c *config.Config) {
				c.Control.Mode = config.ModeTeleop
				c.Control.Routine = ""
			},
		},
		{name: "zero interval", mutate: func(c *config.Config) { c.Control.Interval = 0 }, wantErr: true},
		{name: "negative input timeout", mutate: func(c *config.Config) { c.Control.InputTimeout = -time.Millisecond }, wantErr: true},
		{name: "input never expires", mutate: func(c *config.Config) { c.Control.InputTimeout = 0 }},
		{name: "drive speed above one", mutate: func(c *config.Config) { c.Drive.Speed = 1.5 }, wantErr: true},
		{name: "strafe slip below one", mutate: func(c *config.Config) { c.Drive.StrafeSlip = 0.9 }, wantErr: true},
		{
			name: "preset claw out of range",
			mutate: func(c *config.Config) {
				c.Arm.Presets["bad"] = config.PresetConfig{Claw: 1.2}
			},
			wantErr: true,
		},
		{name: "unknown landmark policy", mutate: func(c *config.Config) { c.Vision.MissingLandmark = "retry" }, wantErr: true},
		{name: "no breaker failures", mutate: func(c *config.Config) { c.Device.CircuitBreaker.MaxFailures = 0 }, wantErr: true},
		{name: "zero sim step", mutate: func(c *config.Config) { c.Sim.TicksPerStep = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() returned error for valid config: %v", err)
			}
		})
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Control: config.ControlConfig{
			Mode:        config.ModeAutonomous,
			Interval:    20 * time.Millisecond,
			LaneTimeout: 10 * time.Second,
			Routine:     "configs/routines/basket-left.yaml",
		},
		Drive: config.DriveConfig{
			WheelRadiusMM:    50,
			GearRatio:        1,
			TicksPerRev:      537.6,
			ToleranceTicks:   30,
			Speed:            0.6,
			TurnSpeed:        0.5,
			StrafeSlip:       1.05,
			TurnToleranceDeg: 2,
		},
		Arm: config.ArmConfig{
			ShoulderPower: 1,
			SlidePower:    1,
			ClawClosed:    0.2,
			ClawOpen:      0.8,
			Presets: map[string]config.PresetConfig{
				"intake": {Shoulder: 220, Claw: 0.2},
			},
		},
		Intake: config.IntakeConfig{Power: 1},
		Vision: config.VisionConfig{MissingLandmark: "arrive"},
		Device: config.DeviceConfig{
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 3, Timeout: 2 * time.Second, HalfOpenLimit: 1},
		},
		Sim: config.SimConfig{TicksPerStep: 40, TrackWidthMM: 380, WheelBaseMM: 340},
	}
}
