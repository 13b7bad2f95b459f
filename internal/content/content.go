package content

import (
	_ "embed"
	"fmt"
	"html"
	"strings"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var portfolioYAML []byte

// Skill is one entry of the skill catalog: proficiency level (0–1), description, and technologies in display order.
type Skill struct {
	Category     string   `yaml:"category"`
	Level        float64  `yaml:"level"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
}

// SummaryLine is one row of the Skills text panel.
type SummaryLine struct {
	Category string `yaml:"category"`
	Text     string `yaml:"text"`
}

// Project is one entry of the Projects text panel.
type Project struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

// Contact holds the Contact text panel fields.
type Contact struct {
	Email  string `yaml:"email"`
	GitHub string `yaml:"github"`
	Phone  string `yaml:"phone"`
}

// Portfolio is the whole static content file.
type Portfolio struct {
	Skills   []Skill       `yaml:"skills"`
	Summary  []SummaryLine `yaml:"summary"`
	Projects []Project     `yaml:"projects"`
	Contact  Contact       `yaml:"contact"`
}

// Catalog is read-only reference data. Lookups hand out deep copies so callers cannot mutate it.
type Catalog struct {
	p     Portfolio
	index map[string]int
}

// Parse decodes portfolio YAML and validates that skill categories are unique and levels are within 0–1.
func Parse(data []byte) (*Catalog, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse portfolio: %w", err)
	}
	c := &Catalog{p: p, index: make(map[string]int, len(p.Skills))}
	for i, s := range p.Skills {
		if s.Category == "" {
			return nil, fmt.Errorf("skill %d: missing category", i)
		}
		if _, dup := c.index[s.Category]; dup {
			return nil, fmt.Errorf("skill %q: duplicate category", s.Category)
		}
		if s.Level < 0 || s.Level > 1 {
			return nil, fmt.Errorf("skill %q: level %v out of range", s.Category, s.Level)
		}
		c.index[s.Category] = i
	}
	return c, nil
}

// Default returns the catalog embedded in the binary. It panics on a malformed embed, which is a build defect.
func Default() *Catalog {
	c, err := Parse(portfolioYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns skill categories in file order (this order places islands on the ring).
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.p.Skills))
	for i, s := range c.p.Skills {
		out[i] = s.Category
	}
	return out
}

// Has reports whether category is a catalog key.
func (c *Catalog) Has(category string) bool {
	_, ok := c.index[category]
	return ok
}

// Lookup returns a copy of the skill for category, or false if the category is unknown.
func (c *Catalog) Lookup(category string) (Skill, bool) {
	i, ok := c.index[category]
	if !ok {
		return Skill{}, false
	}
	var out Skill
	if err := copier.CopyWithOption(&out, &c.p.Skills[i], copier.Option{DeepCopy: true}); err != nil {
		return Skill{}, false
	}
	return out, true
}

// Projects returns a copy of the project list, or nil if it cannot be copied.
func (c *Catalog) Projects() []Project {
	var out []Project
	if err := copier.CopyWithOption(&out, &c.p.Projects, copier.Option{DeepCopy: true}); err != nil {
		return nil
	}
	return out
}

// Contact returns the contact entry.
func (c *Catalog) Contact() Contact {
	return c.p.Contact
}

// SkillsHTML is the content of the Skills text panel.
func (c *Catalog) SkillsHTML() string {
	var b strings.Builder
	b.WriteString("<h2>My Skills</h2>\n<div class=\"skills-grid\">\n")
	for _, l := range c.p.Summary {
		fmt.Fprintf(&b, "<div><strong>%s:</strong> %s</div>\n", html.EscapeString(l.Category), html.EscapeString(l.Text))
	}
	b.WriteString("</div>\n")
	return b.String()
}

// ProjectsHTML is the content of the Projects text panel.
func (c *Catalog) ProjectsHTML() string {
	var b strings.Builder
	b.WriteString("<h2>My Projects</h2>\n")
	for _, p := range c.Projects() {
		link := html.EscapeString(p.Link)
		fmt.Fprintf(&b, "<div class=\"project\">\n<h3>%s</h3>\n<p>%s</p>\n<p><a href=\"%s\">%s</a></p>\n</div>\n",
			html.EscapeString(p.Name), html.EscapeString(p.Description), link, link)
	}
	return b.String()
}

// ContactHTML is the content of the Contact text panel.
func (c *Catalog) ContactHTML() string {
	ct := c.Contact()
	email := html.EscapeString(ct.Email)
	gh := html.EscapeString(ct.GitHub)
	return "<h2>Contact Me</h2>\n<div class=\"contact-info\">\n" +
		"<p><strong>Email: </strong><a href=\"mailto:" + email + "\">" + email + "</a></p>\n" +
		"<p><strong>GitHub: </strong><a href=\"" + gh + "\">" + gh + "</a></p>\n" +
		"<p><strong>Phone:</strong> " + html.EscapeString(ct.Phone) + "</p>\n" +
		"</div>\n"
}
