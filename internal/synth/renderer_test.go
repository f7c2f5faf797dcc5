package synth

import (
	"testing"

	"github.com/Aman-s12345/go-routegen/internal/registry"
	"github.com/stretchr/testify/assert"
)

func TestRenderMethod(t *testing.T) {
	got := RenderMethod(MethodInput{
		Verb:               "get",
		Remainder:          "UserProfile",
		ParameterSuffix:    "/{id}/{tab?}",
		RouteNamePrefix:    "admin.",
		ShortName:          "UserController",
		MethodName:         "getUserProfile",
		FullyQualifiedName: `App\Http\Controllers\Admin\UserController`,
	})

	assert.Equal(t, CandidateRoute{
		HTTPVerb:    "get",
		URLPath:     "/userprofile/{id}/{tab?}",
		RouteName:   "admin.user.getuserprofile",
		ActionLabel: "UserController@getUserProfile",
		Controller:  `App\Http\Controllers\Admin\UserController`,
		Method:      "getUserProfile",
	}, got)
}

func TestRenderMethod_DefaultVerb(t *testing.T) {
	got := RenderMethod(MethodInput{
		Verb:       "get",
		Remainder:  "save",
		ShortName:  "PostController",
		MethodName: "save",
	})

	assert.Equal(t, "/save", got.URLPath)
	assert.Equal(t, "post.save", got.RouteName)
	assert.Equal(t, "PostController@save", got.ActionLabel)
}

func TestRenderGroup(t *testing.T) {
	_, ok := RenderGroup("app.UserController", "", "user", nil)
	assert.False(t, ok)

	candidates := []CandidateRoute{{HTTPVerb: "get", URLPath: "/profile", RouteName: "user.getprofile", ActionLabel: "UserController@getProfile"}}
	group, ok := RenderGroup("app.UserController", "Admin", "admin/user", candidates)
	assert.True(t, ok)
	assert.Equal(t, "Admin", group.NamespaceFragment)
	assert.Equal(t, "admin/user", group.PathPrefix)
	assert.Equal(t, candidates, group.Routes)

	candidates[0].URLPath = "/changed"
	assert.Equal(t, "/profile", group.Routes[0].URLPath)
}

func TestRegistered(t *testing.T) {
	groups := []ControllerGroup{
		{
			Controller: "app/admin.UserController",
			PathPrefix: "admin/user",
			Routes: []CandidateRoute{
				{HTTPVerb: "post", URLPath: "/update/{id}", RouteName: "admin.user.postupdate", ActionLabel: "UserController@postUpdate"},
			},
		},
	}

	assert.Equal(t, []registry.RegisteredRoute{{
		Name:       "admin.user.postupdate",
		Path:       "/admin/user/update/{id}",
		Controller: "app/admin.UserController",
		Action:     "UserController@postUpdate",
		HTTPMethod: "POST",
	}}, Registered(groups))
}
