package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gem-catcher/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.steps} }
func (g *stubGame) Step(float64, core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Fatal("Exists does not reflect registrations")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub-") {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "stub-a" || ids[1] != "stub-b" {
		t.Errorf("List = %v, expected sorted [stub-a stub-b]", ids)
	}

	g1, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g2, _ := Create("stub-a")
	g1.Step(0.1, core.NewInputFrame())
	if g2.State().Score != 0 {
		t.Error("Create should return independent instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
