package core

import (
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(testTemplates())
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if want := []string{"ARCHITECT", "DEVELOPER"}; !reflect.DeepEqual(c.Names(), want) {
		t.Errorf("Names() = %v, want %v", c.Names(), want)
	}
	if !c.Has("ARCHITECT") || c.Has("architect") {
		t.Error("Has() should be exact-match")
	}
	if c.Summary("DEVELOPER") != "Code" {
		t.Errorf("Summary(DEVELOPER) = %q", c.Summary("DEVELOPER"))
	}
	if c.Summary("MY-AGENT") != "Custom agent" {
		t.Errorf("Summary(MY-AGENT) = %q", c.Summary("MY-AGENT"))
	}
}

func TestCatalog_Filter(t *testing.T) {
	c := Catalog{{Name: "A"}, {Name: "B"}}
	known, unknown := c.Filter([]string{"B", "X", "A", "Y"})
	if !reflect.DeepEqual(known, []string{"B", "A"}) {
		t.Errorf("known = %v", known)
	}
	if !reflect.DeepEqual(unknown, []string{"X", "Y"}) {
		t.Errorf("unknown = %v", unknown)
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fs      fstest.MapFS
		wantErr string
	}{
		{"missing", fstest.MapFS{}, "reading catalog"},
		{"bad yaml", fstest.MapFS{"catalog.yaml": {Data: []byte("agents: [")}}, "parsing catalog"},
		{"bad name", fstest.MapFS{"catalog.yaml": {Data: []byte("agents:\n  - name: ../x\n")}}, "invalid agent name"},
		{"duplicate", fstest.MapFS{"catalog.yaml": {Data: []byte("agents:\n  - name: A\n  - name: A\n")}}, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(tt.fs)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
