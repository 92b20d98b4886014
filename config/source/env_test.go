package source

import (
	"context"
	"testing"
)

func TestEnvSource_Name(t *testing.T) {
	src := &EnvSource{}
	if got := src.Name(); got != "env" {
		t.Errorf("Name() = %v, want env", got)
	}
}

func TestEnvSource_Load(t *testing.T) {
	t.Setenv("STAGEHAND_DEBUG", "true")
	t.Setenv("STAGEHAND_MODULES_WEB_ADDR", ":9090")
	t.Setenv("STAGEHAND_SETTINGS_REGION", "us-east-1")
	t.Setenv("OTHER_VAR", "ignored")

	src := &EnvSource{}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got["debug"] != "true" {
		t.Errorf("debug = %v, want \"true\"", got["debug"])
	}
	web, ok := got["modules"].(map[string]any)["web"].(map[string]any)
	if !ok {
		t.Fatalf("missing modules.web in %v", got)
	}
	if web["addr"] != ":9090" {
		t.Errorf("modules.web.addr = %v, want :9090", web["addr"])
	}
	if got["other"] != nil {
		t.Errorf("unprefixed variable leaked: %v", got["other"])
	}
}

func TestEnvSource_Load_LeafConflictSkipsDeeperPath(t *testing.T) {
	t.Setenv("STAGEHAND_DB", "leaf")
	t.Setenv("STAGEHAND_DB_HOST", "localhost")

	src := &EnvSource{}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Either the leaf or the nested map wins depending on iteration
	// order; the loser must never corrupt the winner.
	switch v := got["db"].(type) {
	case string:
		if v != "leaf" {
			t.Errorf("db = %v", v)
		}
	case map[string]any:
		if v["host"] != "localhost" {
			t.Errorf("db.host = %v", v["host"])
		}
	default:
		t.Errorf("db has unexpected type %T", got["db"])
	}
}
