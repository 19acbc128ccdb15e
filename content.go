package lunasync

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed content.toml
var defaultContentTOML []byte

// DefaultContentTOML returns the embedded page copy, for writing out a starter file.
func DefaultContentTOML() []byte {
	out := make([]byte, len(defaultContentTOML))
	copy(out, defaultContentTOML)
	return out
}

// Content is the page copy consumed by BuildPage.
type Content struct {
	Brand    Brand          `toml:"brand"`
	Nav      NavContent     `toml:"nav"`
	Hero     HeroContent    `toml:"hero"`
	Features FeatureSection `toml:"features"`
	Pricing  PricingSection `toml:"pricing"`
	Contact  ContactSection `toml:"contact"`
	Footer   FooterContent  `toml:"footer"`
}

// Brand is the logo icon and product name shown in the nav and footer.
type Brand struct {
	Name string `toml:"name"`
	Icon string `toml:"icon"`
}

// NavLink is a labelled in-page anchor.
type NavLink struct {
	Label string `toml:"label"`
	Href  string `toml:"href"`
}

// NavContent holds the navigation links and the call-to-action button label.
type NavContent struct {
	Links []NavLink `toml:"links"`
	CTA   string `toml:"cta"`
}

// HeroContent is the copy of the hero banner. The title is split so the
// accent can be styled separately.
type HeroContent struct {
	TitleLead    string `toml:"title_lead"`
	TitleAccent  string `toml:"title_accent"`
	TitleTail    string `toml:"title_tail"`
	Subtitle     string `toml:"subtitle"`
	PrimaryCTA   string `toml:"primary_cta"`
	SecondaryCTA string `toml:"secondary_cta"`
	ImageURL     string `toml:"image_url"`
	ImageAlt     string `toml:"image_alt"`
}

// Feature is one card of the features grid.
type Feature struct {
	Icon        string `toml:"icon"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// FeatureSection is the features section; ID is its registered section ID.
type FeatureSection struct {
	ID      string    `toml:"id"`
	Heading string    `toml:"heading"`
	Items   []Feature `toml:"items"`
}

// Plan is one pricing tier.
type Plan struct {
	Name     string   `toml:"name"`
	Price    string   `toml:"price"`
	Features []string `toml:"features"`
}

// PricingSection is the pricing section; ID is its registered section ID.
type PricingSection struct {
	ID      string `toml:"id"`
	Heading string `toml:"heading"`
	Period  string `toml:"period"`
	CTA     string `toml:"cta"`
	Plans   []Plan `toml:"plans"`
}

// FieldLabels are the visible labels of the form inputs.
type FieldLabels struct {
	Name    string `toml:"name"`
	Email   string `toml:"email"`
	Message string `toml:"message"`
}

// For returns the label of f.
func (l FieldLabels) For(f Field) string {
	switch f {
	case FieldName:
		return l.Name
	case FieldEmail:
		return l.Email
	case FieldMessage:
		return l.Message
	}
	return string(f)
}

// ContactSection holds the contact details, form labels and validation copy.
type ContactSection struct {
	ID          string      `toml:"id"`
	Heading     string      `toml:"heading"`
	InfoHeading string      `toml:"info_heading"`
	Email       string      `toml:"email"`
	Phone       string      `toml:"phone"`
	Address     string      `toml:"address"`
	SubmitLabel string      `toml:"submit_label"`
	Labels      FieldLabels `toml:"labels"`
	Messages    Messages    `toml:"messages"`
}

// FooterContent holds the footer links and rights line.
type FooterContent struct {
	Links  []NavLink `toml:"links"`
	Rights string `toml:"rights"`
}

// ErrInvalidContent is wrapped by every Content.Validate failure.
var ErrInvalidContent = errors.New("invalid content")

// SectionIDs returns the registered section IDs in page order.
func (c *Content) SectionIDs() []string {
	return []string{c.Features.ID, c.Pricing.ID, c.Contact.ID}
}

// Validate checks the content can be rendered.
func (c *Content) Validate() error {
	if c.Brand.Name == "" {
		return fmt.Errorf("%w: brand.name is empty", ErrInvalidContent)
	}

	seen := make(map[string]bool, 3)
	for _, id := range c.SectionIDs() {
		if id == "" {
			return fmt.Errorf("%w: section id is empty", ErrInvalidContent)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate section id %q", ErrInvalidContent, id)
		}
		seen[id] = true
	}

	if len(c.Features.Items) == 0 {
		return fmt.Errorf("%w: no features", ErrInvalidContent)
	}
	if len(c.Pricing.Plans) == 0 {
		return fmt.Errorf("%w: no pricing plans", ErrInvalidContent)
	}
	return nil
}

// ParseContent decodes page copy from TOML and validates it.
// Blank form messages and labels are filled with defaults.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	c.Contact.Messages = c.Contact.Messages.withDefaults()
	if c.Contact.Labels.Name == "" {
		c.Contact.Labels.Name = "Name"
	}
	if c.Contact.Labels.Email == "" {
		c.Contact.Labels.Email = "Email"
	}
	if c.Contact.Labels.Message == "" {
		c.Contact.Labels.Message = "Message"
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadContent reads page copy from a TOML file.
// An empty path returns the embedded default copy.
func LoadContent(path string) (*Content, error) {
	if path == "" {
		return DefaultContent(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return ParseContent(data)
}

// DefaultContent returns the embedded LunaSync copy.
func DefaultContent() *Content {
	c, err := ParseContent(defaultContentTOML)
	if err != nil {
		panic(fmt.Sprintf("lunasync: embedded content is invalid: %v", err))
	}
	return c
}

// ControllerConfig returns a ControllerConfig wired to this content's
// sections and messages.
func (c *Content) ControllerConfig() ControllerConfig {
	return ControllerConfig{
		Sections: c.SectionIDs(),
		Messages: c.Contact.Messages,
	}
}
