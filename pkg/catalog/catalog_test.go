package catalog

import (
	"strings"
	"testing"
)

func TestLoadAllDomains(t *testing.T) {
	wantGroups := map[Domain]int{EDD: 8, HRDD: 9, EUDD: 8}
	for d, want := range wantGroups {
		c, err := Load(d)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", d, err)
		}
		if c.GroupCount() != want {
			t.Errorf("Load(%s) groups = %d, want %d", d, c.GroupCount(), want)
		}
		if len(c.Items()) == 0 {
			t.Errorf("Load(%s) has no items", d)
		}
	}
}

func TestItemIDsUniqueAndPrefixed(t *testing.T) {
	for _, d := range Domains {
		c, err := Load(d)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", d, err)
		}
		seen := map[string]bool{}
		prefix := strings.ToUpper(string(d)) + "-"
		for _, item := range c.Items() {
			if seen[item.ID] {
				t.Errorf("duplicate id %s in %s", item.ID, d)
			}
			seen[item.ID] = true
			if !strings.HasPrefix(item.ID, prefix) {
				t.Errorf("id %s does not carry domain prefix %s", item.ID, prefix)
			}
			if item.Text == "" {
				t.Errorf("id %s has empty text", item.ID)
			}
		}
	}
}

func TestFind(t *testing.T) {
	c, err := Load(EDD)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	item, ok := c.Find("EDD-5-03")
	if !ok {
		t.Fatal("Find(EDD-5-03) not found")
	}
	if item.ID != "EDD-5-03" {
		t.Errorf("Find returned id %s", item.ID)
	}
	if _, ok := c.Find("HRDD-1-01"); ok {
		t.Error("EDD catalog should not contain HRDD ids")
	}
}

func TestParseDomain(t *testing.T) {
	if _, err := ParseDomain("edd"); err != nil {
		t.Errorf("ParseDomain(edd) error = %v", err)
	}
	if _, err := ParseDomain("bogus"); err == nil {
		t.Error("ParseDomain(bogus) expected error")
	}
}
