package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/internal/infrastructure/stubserver"
)

func TestListCommand_TableOutput(t *testing.T) {
	srv, _ := startStub(t, stubserver.SampleStudents()...)

	res := executeCommand(t, "--base-url", srv.URL, "list")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "ID  NAME")
	require.Contains(t, res.stdout, "Ana Torres")
	require.Contains(t, res.stdout, "Computer Science")
	require.Contains(t, res.stdout, "9.60")
}

func TestListCommand_JSONOutput(t *testing.T) {
	srv, _ := startStub(t, stubserver.SampleStudents()...)

	res := executeCommand(t, "--base-url", srv.URL, "list", "--json")
	require.NoError(t, res.err)

	var payload struct {
		Count    int               `json:"count"`
		Students []student.Student `json:"students"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &payload))
	require.Equal(t, 5, payload.Count)
	require.Len(t, payload.Students, 5)
	require.Equal(t, student.ID(1), payload.Students[0].ID)
}

func TestListCommand_EmptyCollection(t *testing.T) {
	srv, _ := startStub(t)

	res := executeCommand(t, "--base-url", srv.URL, "list")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "No students yet.")
	require.Contains(t, res.stdout, "roster create")
}

func TestListCommand_UnreachableService(t *testing.T) {
	srv, _ := startStub(t)
	url := srv.URL
	srv.Close()

	res := executeCommand(t, "--base-url", url, "list")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "Failed to list students")
	require.Contains(t, res.err.Error(), "transport error")
	require.Contains(t, res.err.Error(), "roster serve")
}

func TestListCommand_InvalidBaseURL(t *testing.T) {
	res := executeCommand(t, "--base-url", "not a url", "list")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "validating --base-url")
}

func TestListCommand_MissingExplicitConfig(t *testing.T) {
	res := executeCommand(t, "--config", "/definitely/missing/roster.yaml", "list")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "Failed to load configuration")
	require.Contains(t, res.err.Error(), "/definitely/missing/roster.yaml")
}

func TestListCommand_UsesConfigFile(t *testing.T) {
	srv, _ := startStub(t, stubserver.SampleStudents()...)
	path := writeConfigFile(t, `
api:
  base_url: `+srv.URL+`
  resource_path: /students
controller:
  reload_policy: patch
`)

	res := executeCommand(t, "--config", path, "list", "--json")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, `"count": 5`)
}
