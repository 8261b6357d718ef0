package registry

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func stubFactory(id string) Factory {
	return func() Game { return stubGame{id: id} }
}

func TestRegisterKeepsOrderAndFillsTitle(t *testing.T) {
	Register(Entry{ID: "test-b", Factory: stubFactory("test-b")})
	Register(Entry{ID: "test-a", Title: "Alpha", Factory: stubFactory("test-a")})

	var ids []string
	for _, e := range List() {
		if e.ID == "test-a" || e.ID == "test-b" {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "test-b" || ids[1] != "test-a" {
		t.Errorf("List() order = %v, expected [test-b test-a]", ids)
	}

	e, ok := Lookup("test-b")
	if !ok {
		t.Fatal("Lookup(test-b) not found")
	}
	if e.Title != "Stub test-b" {
		t.Errorf("Title = %q, expected %q", e.Title, "Stub test-b")
	}
}

func TestCreate(t *testing.T) {
	Register(Entry{ID: "test-create", Factory: stubFactory("test-create")})

	g, err := Create("test-create")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "test-create" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "test-create")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Entry{ID: "test-dup", Factory: stubFactory("test-dup")})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Entry{ID: "test-dup", Factory: stubFactory("test-dup")})
}

func TestRegisterNilFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register without factory should panic")
		}
	}()
	Register(Entry{ID: "test-nil"})
}
