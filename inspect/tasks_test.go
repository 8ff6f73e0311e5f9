package inspect

import (
	"reflect"
	"testing"

	"github.com/dgallion1/markwalk"
)

func TestTasksCollectsCompletionState(t *testing.T) {
	input := "- [x] ship the walker\n- [ ] write more docs\n"

	tasks, err := markwalk.FromMarkdown[Tasks]([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Task{
		{Done: true, Text: "ship the walker"},
		{Done: false, Text: "write more docs"},
	}
	if !reflect.DeepEqual(tasks.Items, want) {
		t.Errorf("task mismatch:\n got %+v\nwant %+v", tasks.Items, want)
	}
}

func TestTasksIgnoresPlainListItems(t *testing.T) {
	input := "- plain item\n- [ ] real task\n- another plain one\n"

	tasks, err := markwalk.FromMarkdown[Tasks]([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks.Items) != 1 {
		t.Fatalf("expected 1 task, got %+v", tasks.Items)
	}
	if tasks.Items[0].Text != "real task" || tasks.Items[0].Done {
		t.Errorf("unexpected task: %+v", tasks.Items[0])
	}
}

func TestTasksNested(t *testing.T) {
	input := "- [x] parent\n  - [ ] child\n"

	tasks, err := markwalk.FromMarkdown[Tasks]([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Task{
		{Done: true, Text: "parent"},
		{Done: false, Text: "child"},
	}
	if !reflect.DeepEqual(tasks.Items, want) {
		t.Errorf("task mismatch:\n got %+v\nwant %+v", tasks.Items, want)
	}
}
