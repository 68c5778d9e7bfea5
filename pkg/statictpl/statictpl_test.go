package statictpl

import (
	"errors"
	"testing"

	"github.com/voxrig/rigcast/pkg/givecmd"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no shipped templates")
	}

	want := []string{"preview_stand", "rig_runtime"}
	if len(names) != len(want) {
		t.Fatalf("names = %v; want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s; want %s", i, names[i], want[i])
		}
	}
}

func TestGetKnown(t *testing.T) {
	for _, name := range Names() {
		payload, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		// Every shipped blob must pass the raw-mode payload contract.
		b := &givecmd.Builder{}
		if _, err := b.Command(&givecmd.TemplateItem{RawPayload: payload, Name: name}); err != nil {
			t.Errorf("shipped blob %s does not build: %v", name, err)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("nope")

	var verr *givecmd.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v (%T); want *givecmd.ValidationError", err, err)
	}
}

func TestItem(t *testing.T) {
	item, err := Item("rig_runtime")
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if item.Name != "rig_runtime" || item.RawPayload == "" {
		t.Errorf("item = %+v", item)
	}
}
