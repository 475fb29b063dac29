package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// Domain 자가진단 규제 영역
type Domain string

const (
	EDD  Domain = "edd"  // 환경 실사
	HRDD Domain = "hrdd" // 인권 실사
	EUDD Domain = "eudd" // EU 공급망 실사
)

// Domains lists every registered assessment domain.
var Domains = []Domain{EDD, HRDD, EUDD}

// Item 개별 진단 문항
type Item struct {
	ID                string `yaml:"id" json:"id"`
	Text              string `yaml:"text" json:"text"`
	LegalRelevance    string `yaml:"legal_relevance" json:"legalRelevance"`
	LegalBasis        string `yaml:"legal_basis" json:"legalBasis"`
	FineRange         string `yaml:"fine_range" json:"fineRange"`
	CriminalLiability string `yaml:"criminal_liability" json:"criminalLiability"`
}

// Group 문항 그룹 (단계)
type Group struct {
	Index int    `yaml:"index" json:"groupIndex"`
	Title string `yaml:"title" json:"title"`
	Items []Item `yaml:"items" json:"items"`
}

// Catalog 영역별 전체 문항 카탈로그. 빌드 시점에 고정되며 변경되지 않는다.
type Catalog struct {
	Domain Domain  `yaml:"domain"`
	Title  string  `yaml:"title"`
	Groups []Group `yaml:"groups"`

	byID map[string]*Item
}

var catalogs = map[Domain]*Catalog{}

func init() {
	for _, d := range Domains {
		c, err := load(d)
		if err != nil {
			panic(fmt.Sprintf("catalog %s: %v", d, err))
		}
		catalogs[d] = c
	}
}

func load(d Domain) (*Catalog, error) {
	raw, err := catalogFS.ReadFile(fmt.Sprintf("catalogs/%s.yaml", d))
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	c.byID = make(map[string]*Item)
	for gi := range c.Groups {
		for ii := range c.Groups[gi].Items {
			item := &c.Groups[gi].Items[ii]
			if _, dup := c.byID[item.ID]; dup {
				return nil, fmt.Errorf("duplicate question id %q", item.ID)
			}
			c.byID[item.ID] = item
		}
	}
	return &c, nil
}

// Load returns the catalog for the given domain.
func Load(d Domain) (*Catalog, error) {
	c, ok := catalogs[d]
	if !ok {
		return nil, fmt.Errorf("unknown assessment domain: %s", d)
	}
	return c, nil
}

// ParseDomain validates a wire-level domain string.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if _, ok := catalogs[d]; !ok {
		return "", fmt.Errorf("unknown assessment domain: %s", s)
	}
	return d, nil
}

// Find returns the item with the given id, if present.
func (c *Catalog) Find(id string) (*Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Items returns every item in group order.
func (c *Catalog) Items() []Item {
	var out []Item
	for _, g := range c.Groups {
		out = append(out, g.Items...)
	}
	return out
}

// GroupCount returns the number of steps in the questionnaire.
func (c *Catalog) GroupCount() int { return len(c.Groups) }
