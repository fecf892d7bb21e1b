package tool

import (
	"context"
	"testing"
)

func TestDirectoryLookupIndiaCaseInsensitive(t *testing.T) {
	t.Parallel()

	dir := NewDirectory()
	for _, region := range []string{"india", "India", "INDIA", "in", "IN"} {
		contacts := dir.Lookup(region)
		if contacts["general_emergency"] != "112" {
			t.Fatalf("region %q: general_emergency = %q, want 112", region, contacts["general_emergency"])
		}
		if contacts["disaster_management"] != "108" {
			t.Fatalf("region %q: disaster_management = %q, want 108", region, contacts["disaster_management"])
		}
	}
}

func TestDirectoryLookupUnknownRegionFallsBack(t *testing.T) {
	t.Parallel()

	dir := NewDirectory()
	contacts := dir.Lookup("atlantis")
	if contacts["general_emergency"] != "911/112 (depending on your country)" {
		t.Fatalf("unexpected generic mapping: %#v", contacts)
	}
	if contacts["disaster_management"] == "" {
		t.Fatal("generic mapping must include disaster_management")
	}
}

func TestExecutorMathEvaluate(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(NewDirectory())
	out, err := executor(context.Background(), ToolMathEvaluate, map[string]any{
		"expression": "2 + 3 * (4 - 1)",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "" {
		t.Fatalf("unexpected tool error: %s", out.Error)
	}
	result, ok := out.Result.(MathEvaluateOutput)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if result.Result != 11 {
		t.Fatalf("result = %v, want 11", result.Result)
	}
}

func TestExecutorMathEvaluateRejectsBadExpression(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(NewDirectory())
	out, err := executor(context.Background(), ToolMathEvaluate, map[string]any{
		"expression": "2 + import",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error == "" {
		t.Fatal("expected a tool error for invalid characters")
	}
}

func TestExecutorHotlineLookup(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(NewDirectory())
	out, err := executor(context.Background(), ToolHotlineLookup, map[string]any{
		"region": "india",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	contacts, ok := out.Result.(map[string]string)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if contacts["general_emergency"] != "112" {
		t.Fatalf("general_emergency = %q, want 112", contacts["general_emergency"])
	}
}

func TestExecutorGenericSearch(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(NewDirectory())
	out, err := executor(context.Background(), ToolGenericSearch, map[string]any{
		"query": "flood safety",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, ok := out.Result.([]SearchResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if len(results) != 1 || results[0].Title == "" {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestExecutorUnknownToolIsUnavailable(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(NewDirectory())
	out, err := executor(context.Background(), "inventory.query", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error == "" {
		t.Fatal("expected non-empty unavailable message")
	}
}
