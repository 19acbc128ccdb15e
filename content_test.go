package lunasync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c := DefaultContent()

	assert.Equal(t, "LunaSync", c.Brand.Name)
	assert.Equal(t, []string{"features", "pricing", "contact"}, c.SectionIDs())
	assert.Len(t, c.Features.Items, 3)
	require.Len(t, c.Pricing.Plans, 3)
	assert.Equal(t, "Professional", c.Pricing.Plans[1].Name)
	assert.Equal(t, DefaultMessages(), c.Contact.Messages)
	assert.NoError(t, c.Validate())
}

func TestDefaultContentLinks(t *testing.T) {
	c := DefaultContent()

	assert.Equal(t, []NavLink{
		{Label: "Features", Href: "#features"},
		{Label: "Pricing", Href: "#pricing"},
		{Label: "Contact", Href: "#contact"},
	}, c.Nav.Links)
	require.Len(t, c.Footer.Links, 3)
	assert.Equal(t, NavLink{Label: "Privacy Policy", Href: "#"}, c.Footer.Links[0])

	// Nav links render through the Link widget constructor.
	page := BuildPage(NewState(c.SectionIDs()), c, ViewOptions{})
	link, ok := page.Find(func(w Widget) bool { return w.Kind == WidgetLink && w.Text == "Pricing" })
	require.True(t, ok)
	assert.Equal(t, "#pricing", link.Attr(AttrHref))
}

func TestParseContentFillsDefaults(t *testing.T) {
	data := []byte(`
[brand]
name = "Acme"

[features]
id = "what"
[[features.items]]
title = "Fast"

[pricing]
id = "cost"
[[pricing.plans]]
name = "Only"
price = "1"

[contact]
id = "talk"
[contact.messages]
email_invalid = "Bad address"
`)

	c, err := ParseContent(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"what", "cost", "talk"}, c.SectionIDs())
	assert.Equal(t, "Bad address", c.Contact.Messages.EmailInvalid)
	assert.Equal(t, "Name is required", c.Contact.Messages.NameRequired)
	assert.Equal(t, "Email", c.Contact.Labels.For(FieldEmail))
}

func TestParseContentRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no brand", `[features]
id = "a"
[[features.items]]
title = "x"
[pricing]
id = "b"
[[pricing.plans]]
name = "p"
[contact]
id = "c"`},
		{"duplicate section", `[brand]
name = "x"
[features]
id = "a"
[[features.items]]
title = "x"
[pricing]
id = "a"
[[pricing.plans]]
name = "p"
[contact]
id = "c"`},
		{"empty section id", `[brand]
name = "x"
[features]
id = "a"
[[features.items]]
title = "x"
[pricing]
id = "b"
[[pricing.plans]]
name = "p"`},
		{"no plans", `[brand]
name = "x"
[features]
id = "a"
[[features.items]]
title = "x"
[pricing]
id = "b"
[contact]
id = "c"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseContent([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidContent)
		})
	}
}

func TestParseContentMalformedTOML(t *testing.T) {
	_, err := ParseContent([]byte("[brand\nname ="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse content")
}

func TestLoadContent(t *testing.T) {
	c, err := LoadContent("")
	require.NoError(t, err)
	assert.Equal(t, "LunaSync", c.Brand.Name)

	path := filepath.Join(t.TempDir(), "content.toml")
	require.NoError(t, os.WriteFile(path, DefaultContentTOML(), 0644))

	fromFile, err := LoadContent(path)
	require.NoError(t, err)
	assert.Equal(t, c, fromFile)

	_, err = LoadContent(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestContentControllerConfig(t *testing.T) {
	c := DefaultContent()
	ctrl := NewController(c.ControllerConfig())

	st := ctrl.State()
	assert.Equal(t, c.SectionIDs(), st.Sections)
	assert.Len(t, st.Scroll.Visible, 3)
}
