package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSnapshot = `routes:
  - name: user.getprofile
    path: /user/profile
    action: UserController@getProfile
    method: GET
  - path: /health
    action: Closure
`

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSnapshot), 0o644))

	snapshot, err := Load(path)
	require.NoError(t, err)
	require.Len(t, snapshot.Routes, 2)
	assert.Equal(t, RegisteredRoute{
		Name:       "user.getprofile",
		Path:       "/user/profile",
		Action:     "UserController@getProfile",
		HTTPMethod: "GET",
	}, snapshot.Routes[0])
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"routes":[{"path":"/x","action":"XController@getX"}]}`), 0o644))

	snapshot, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "XController@getX", snapshot.Routes[0].Action)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	txt := filepath.Join(dir, "routes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("routes"), 0o644))
	_, err = Load(txt)
	assert.ErrorIs(t, err, ErrUnsupportedSnapshot)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"snap.yaml", "nested/snap.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := &Snapshot{Routes: []RegisteredRoute{
				{Name: "user.getprofile", Path: "/user/profile", Controller: "app.UserController", Action: "UserController@getProfile", HTTPMethod: "GET"},
			}}

			require.NoError(t, Save(path, want))
			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
