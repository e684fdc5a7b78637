package main

import (
	"testing"

	"github.com/protocollar/names/cmd"
)

func TestRootCommandExists(t *testing.T) {
	root := cmd.RootCommand()
	if root == nil {
		t.Fatal("root command is nil")
	}
	if root.Name() != "names" {
		t.Errorf("root command Name() = %q, want %q", root.Name(), "names")
	}
}

func TestMCPSubcommandRegistered(t *testing.T) {
	root := cmd.RootCommand()
	found := false
	for _, c := range root.Commands() {
		if c.Use == "mcp" {
			found = true
			// Verify serve is a subcommand of mcp
			hasServe := false
			for _, sub := range c.Commands() {
				if sub.Use == "serve" {
					hasServe = true
				}
			}
			if !hasServe {
				t.Error("mcp command missing 'serve' subcommand")
			}
		}
	}
	if !found {
		t.Error("root command missing 'mcp' subcommand")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	root := cmd.RootCommand()
	want := map[string]bool{"config": false, "words": false, "pick": false, "version": false, "completion": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}
