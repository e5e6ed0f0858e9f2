package engine

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewRulesValidation(t *testing.T) {
	if _, err := NewRules("empty", nil, nil); errors.Cause(err) != ErrEmptyDomain {
		t.Fatalf("expected ErrEmptyDomain, got %v", err)
	}
	if _, err := NewRules("self", []Hand{HandRock, HandPaper}, map[Hand][]Hand{
		HandRock: {HandRock}, HandPaper: {HandRock},
	}); err == nil {
		t.Fatal("expected error for self-beating hand")
	}
	if _, err := NewRules("missing", []Hand{HandRock, HandPaper}, map[Hand][]Hand{
		HandRock: {HandPaper},
	}); err == nil {
		t.Fatal("expected error for hand without counter")
	}
	if _, err := NewRules("unknown", []Hand{HandRock, HandPaper}, map[Hand][]Hand{
		HandRock: {HandPaper}, HandPaper: {HandSpock},
	}); err == nil {
		t.Fatal("expected error for unknown counter")
	}
}

func TestRulesAccessorsReturnCopies(t *testing.T) {
	hands := Classic.Hands()
	hands[0] = HandSpock
	if Classic.Hands()[0] != HandRock {
		t.Fatal("Hands leaked internal slice")
	}
	counters := Classic.BeatenBy(HandRock)
	counters[0] = HandSpock
	if Classic.BeatenBy(HandRock)[0] != HandPaper {
		t.Fatal("BeatenBy leaked internal slice")
	}
}

func TestRulesParse(t *testing.T) {
	if h, ok := Classic.Parse("  ROCK \n"); !ok || h != HandRock {
		t.Fatalf("Parse rock = %q %v", h, ok)
	}
	if _, ok := Classic.Parse("spock"); ok {
		t.Fatal("spock is not a classic hand")
	}
	if h, ok := Extended.Parse("Spock"); !ok || h != HandSpock {
		t.Fatalf("Parse Spock = %q %v", h, ok)
	}
}

func TestRulesByName(t *testing.T) {
	r, err := RulesByName("Extended")
	if err != nil || r != Extended {
		t.Fatalf("RulesByName(Extended) = %v, %v", r, err)
	}
	if _, err := RulesByName("chess"); err == nil {
		t.Fatal("expected error for unknown rules")
	}
}

func TestHandTitle(t *testing.T) {
	if got := HandScissors.Title(); got != "Scissors" {
		t.Fatalf("Title = %q", got)
	}
}
