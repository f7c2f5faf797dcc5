package introspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureModule = "example.com/shop"

const baseControllerSrc = `package http

import "context"

// Controller carries shared helpers.
type Controller struct{}

func (c *Controller) Render(ctx context.Context, view string) error { return nil }
`

const userControllerSrc = `package controllers

import (
	"context"
	"log/slog"

	"example.com/shop/http"
)

// UserController manages user accounts.
type UserController struct {
	http.Controller
	logger *slog.Logger
}

func (c *UserController) GetProfile(ctx context.Context, id int, tab *string) error { return nil }

func (c *UserController) PostUpdate(id int, logger *slog.Logger) error { return nil }

func (c UserController) Search(terms ...string) {}

func (c *UserController) helper() {}

func (c *UserController) Index() {}
`

const adminUserControllerSrc = `package admin

type (
	// UserController administers user accounts.
	UserController struct{}

	Widget struct{}
)

func (u *UserController) DeleteUser(id int64, _ bool) {}
`

func writeFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"go.mod":                            "module " + fixtureModule + "\n\ngo 1.22\n",
		"http/controller.go":                baseControllerSrc,
		"http/controllers/user.go":          userControllerSrc,
		"http/controllers/user_test.go":     "package controllers\n\ntype BrokenController struct{}\n",
		"http/controllers/admin/user.go":    adminUserControllerSrc,
		"http/controllers/admin/readme.txt": "not go",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}
