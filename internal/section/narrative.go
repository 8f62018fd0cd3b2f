package section

// Kind says how a section's content is extracted.
type Kind int

const (
	KindText Kind = iota // paragraphs, see Text
	KindList             // bullet items, see ListItems
)

// Spec describes one narrative section of a posting.
type Spec struct {
	Name  string
	Kind  Kind
	Start []string // header aliases, highest priority first
	Next  []string // headers expected to follow; nil means use the catalog
}

// Narrative names, in the order they appear on a posting.
const (
	WhoWeAre              = "whoWeAre"
	WhatWeLookFor         = "whatWeLookFor"
	Responsibilities      = "responsibilities"
	Skills                = "skills"
	MinimumQualifications = "minimumQualifications"
	DesiredQualifications = "desiredQualifications"
	Benefits              = "benefits"
)

// Narrative is the section layout of the careers feed.
var Narrative = []Spec{
	{
		Name:  WhoWeAre,
		Kind:  KindText,
		Start: []string{"Who We Are"},
		Next:  []string{"What We Are Looking For"},
	},
	{
		Name:  WhatWeLookFor,
		Kind:  KindText,
		Start: []string{"What We Are Looking For"},
		Next:  []string{"What You"},
	},
	{
		Name:  Responsibilities,
		Kind:  KindList,
		Start: []string{"What You'll Be Doing"},
		Next:  []string{"The Skills You Bring", "Skills and Training", "Minimum Qualifications", "Required Qualifications"},
	},
	{
		Name:  Skills,
		Kind:  KindList,
		Start: []string{"The Skills You Bring", "Skills and Training"},
		Next:  []string{"Minimum Qualifications", "Required Qualifications"},
	},
	{
		Name:  MinimumQualifications,
		Kind:  KindList,
		Start: []string{"Minimum Qualifications", "Required Qualifications"},
		Next:  []string{"Desired Qualifications", "What We Offer"},
	},
	{
		Name:  DesiredQualifications,
		Kind:  KindList,
		Start: []string{"Desired Qualifications"},
		Next:  []string{"What We Offer"},
	},
	{
		Name:  Benefits,
		Kind:  KindList,
		Start: []string{"What We Offer"},
	},
}

// Content is the extracted narrative of one posting, keyed by section name.
type Content struct {
	Text  map[string]string
	Lists map[string][]string
}

// ExtractAll extracts every listed section from the decoded body.
func ExtractAll(body string, specs []Spec) Content {
	c := Content{
		Text:  make(map[string]string),
		Lists: make(map[string][]string),
	}
	for _, s := range specs {
		switch s.Kind {
		case KindText:
			c.Text[s.Name] = Text(body, s.Start, s.Next)
		case KindList:
			c.Lists[s.Name] = ListItems(body, s.Start, s.Next)
		}
	}
	return c
}

// List returns the named list, never nil.
func (c Content) List(name string) []string {
	if l, ok := c.Lists[name]; ok && l != nil {
		return l
	}
	return []string{}
}
