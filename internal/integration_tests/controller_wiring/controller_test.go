package integration_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/hclview/internal/registry"
	"github.com/vk/hclview/internal/testutil"
	"github.com/vk/hclview/internal/vmodel"
)

// formController is the shape most real controllers take: it receives the
// load's property store and finishes its setup in Init.
type formController struct {
	store  *vmodel.Store
	inited bool
}

func newFormController(store *vmodel.Store) *formController {
	return &formController{store: store}
}

func (c *formController) Init(context.Context) error {
	c.inited = true
	return nil
}

// auditTrail stands in for an application service a constructor may require.
type auditTrail struct {
	entries []string
}

func TestControllerWiring_StoreInjectionAndInit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New()
	reg.RegisterController("form_controller", newFormController)
	files := map[string]string{
		"main.view": `
column "root" {
  controller = "form_controller"
  text_input "name_field" {
    bind_target = "name"
  }
}
`,
	}

	// --- Act ---
	result := testutil.RunLoad(t, testutil.LoadSpec{
		Files:    files,
		Entry:    "main.view",
		Model:    &testutil.Person{Name: "Max"},
		Registry: reg,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Len(t, result.View.Controllers, 1)
	built := result.View.Controllers[0]
	assert.Equal(t, "form_controller", built.Name)
	assert.Equal(t, "root", built.NodeID)

	ctrl, ok := built.Instance.(*formController)
	require.True(t, ok)
	assert.Same(t, result.View.Store, ctrl.store)
	assert.True(t, ctrl.inited, "Init must run after binding resolution")

	assert.Contains(t, result.LogOutput, "Controller attached.")
	assert.Contains(t, result.LogOutput, "controller=form_controller")
}

func TestControllerWiring_PicksFirstSatisfiableConstructor(t *testing.T) {
	t.Parallel()

	type wired struct {
		audit *auditTrail
		store *vmodel.Store
	}

	// --- Arrange ---
	// The first constructor needs an auditTrail the registry does not carry,
	// so the build falls through to the store-only constructor.
	var got *wired
	reg := registry.New()
	reg.RegisterController("form_controller",
		func(audit *auditTrail, store *vmodel.Store) *wired {
			got = &wired{audit: audit, store: store}
			return got
		},
		func(store *vmodel.Store) *wired {
			got = &wired{store: store}
			return got
		},
	)
	files := map[string]string{
		"main.view": `
column "root" {
  controller = "form_controller"
}
`,
	}

	// --- Act ---
	result := testutil.RunLoad(t, testutil.LoadSpec{
		Files:    files,
		Entry:    "main.view",
		Model:    &testutil.Person{},
		Registry: reg,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.NotNil(t, got)
	assert.Nil(t, got.audit)
	assert.Same(t, result.View.Store, got.store)
}

func TestControllerWiring_RegisteredDependencyUnlocksRicherConstructor(t *testing.T) {
	t.Parallel()

	type wired struct {
		audit *auditTrail
		store *vmodel.Store
	}

	// --- Arrange ---
	audit := &auditTrail{}
	var got *wired
	reg := registry.New()
	reg.Add(audit)
	reg.RegisterController("form_controller",
		func(a *auditTrail, store *vmodel.Store) *wired {
			got = &wired{audit: a, store: store}
			return got
		},
		func(store *vmodel.Store) *wired {
			got = &wired{store: store}
			return got
		},
	)
	files := map[string]string{
		"main.view": `
column "root" {
  controller = "form_controller"
}
`,
	}

	// --- Act ---
	result := testutil.RunLoad(t, testutil.LoadSpec{
		Files:    files,
		Entry:    "main.view",
		Model:    &testutil.Person{},
		Registry: reg,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.NotNil(t, got)
	assert.Same(t, audit, got.audit)
	assert.Same(t, result.View.Store, got.store)
}

func TestControllerWiring_MissingDependencyFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New()
	reg.RegisterController("form_controller", func(audit *auditTrail) *formController {
		return &formController{}
	})
	files := map[string]string{
		"main.view": `
column "root" {
  controller = "form_controller"
}
`,
	}

	// --- Act ---
	result := testutil.RunLoad(t, testutil.LoadSpec{
		Files:    files,
		Entry:    "main.view",
		Model:    &testutil.Person{},
		Registry: reg,
	})

	// --- Assert ---
	require.Error(t, result.Err)
	var ctorErr *registry.ConstructorError
	require.ErrorAs(t, result.Err, &ctorErr)
	assert.Equal(t, "form_controller", ctorErr.Name)
	assert.Contains(t, result.Err.Error(), "no constructor satisfiable")
}

func TestControllerWiring_NestedControllerGetsNestedStore(t *testing.T) {
	t.Parallel()

	type capture struct {
		store *vmodel.Store
	}

	// --- Arrange ---
	// Both documents reference the same controller name. Each load clones the
	// registry with its own store, so the two instances must see different
	// stores bound to different models.
	var captured []*capture
	reg := registry.New()
	reg.RegisterController("capture", func(store *vmodel.Store) *capture {
		c := &capture{store: store}
		captured = append(captured, c)
		return c
	})
	files := map[string]string{
		"main.view": `
column "root" {
  controller = "capture"
  group "address_box" {
    bind_target = "address"
    bind_source = "address.view"
  }
}
`,
		"address.view": `
column "address_root" {
  controller = "capture"
  text_input "street_field" {
    bind_target = "street"
  }
}
`,
	}
	model := &testutil.Person{
		Address: &testutil.Address{Street: "Main 1"},
	}

	// --- Act ---
	result := testutil.RunLoad(t, testutil.LoadSpec{
		Files:    files,
		Entry:    "main.view",
		Model:    model,
		Registry: reg,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Len(t, captured, 2, "one controller per document")

	parent, nested := captured[0], captured[1]
	assert.Same(t, result.View.Store, parent.store)
	assert.Same(t, model, parent.store.Model())

	assert.NotSame(t, parent.store, nested.store)
	addr, ok := nested.store.Model().(*testutil.Address)
	require.True(t, ok)
	assert.Same(t, model.Address, addr)

	// The sub-view keeps its own controller record and store.
	require.Len(t, result.View.Nested, 1)
	sub := result.View.Nested[0]
	assert.Same(t, nested.store, sub.Store)
	require.Len(t, sub.Controllers, 1)
	assert.Same(t, nested, sub.Controllers[0].Instance)
}
