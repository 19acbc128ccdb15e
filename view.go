package lunasync

import (
	"strconv"
	"strings"
)

// ViewOptions carries presentation inputs that are not part of State.
type ViewOptions struct {
	// Year is printed in the footer copyright line.
	Year int
}

// State-dependent class sets.
const (
	navBaseClasses   = "fixed w-full z-50 transition-all duration-300"
	navSolidClasses  = "bg-white shadow-md py-2"
	navClearClasses  = "bg-transparent py-4"
	menuPanelClasses = "md:hidden transition-all duration-300 ease-in-out overflow-hidden bg-white"
	menuOpenClasses  = "max-h-64 opacity-100"
	menuShutClasses  = "max-h-0 opacity-0"
	revealBase       = "transition-opacity duration-1000"
	revealShown      = "opacity-100 translate-y-0"
	revealHidden     = "opacity-0 translate-y-10"
	inputBase        = "w-full px-4 py-2 border rounded-lg focus:ring-2 focus:ring-purple-600 outline-none transition-all duration-300"
	inputInvalid     = "border-red-500"
	inputValid       = "border-gray-300"
	errorTextClasses = "text-red-500 text-sm mt-1"
	primaryButton    = "bg-purple-600 text-white rounded-full hover:bg-purple-700 transition-colors"
)

// cx joins class fragments, skipping empty ones.
func cx(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// pick returns a when cond holds, else b.
func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// NavClasses returns the navigation bar classes for the scroll state.
func NavClasses(s ScrollState) string {
	return cx(navBaseClasses, pick(s.PastThreshold, navSolidClasses, navClearClasses))
}

// MenuPanelClasses returns the mobile panel classes for the menu state.
func MenuPanelClasses(m MenuState) string {
	return cx(menuPanelClasses, pick(m.Open, menuOpenClasses, menuShutClasses))
}

// SectionClasses returns the classes of a registered section given its
// background classes.
func SectionClasses(background string, visible bool) string {
	return cx("py-20", background, revealBase, pick(visible, revealShown, revealHidden))
}

// InputClasses returns the classes of a form input.
func InputClasses(invalid bool) string {
	return cx(inputBase, pick(invalid, inputInvalid, inputValid))
}

// BuildPage renders the state into a widget tree.
func BuildPage(s State, c *Content, opts ViewOptions) Widget {
	return Page("min-h-screen bg-gradient-to-b from-gray-50 to-gray-100",
		buildNav(s, c),
		buildHero(c),
		buildFeatures(s, c),
		buildPricing(s, c),
		buildContact(s, c),
		buildFooter(c, opts),
	)
}

func buildNav(s State, c *Content) Widget {
	menuIcon := pick(s.Menu.Open, "x", "menu")

	toggle := Button("", "md:hidden p-2 rounded-lg hover:bg-gray-100",
		Icon(menuIcon, "h-6 w-6"),
	)
	toggle.WithAttr(AttrAction, ActionToggleMenu)

	desktopLinks := make([]Widget, 0, len(c.Nav.Links))
	mobileLinks := make([]Widget, 0, len(c.Nav.Links)+1)
	for _, l := range c.Nav.Links {
		desktopLinks = append(desktopLinks,
			Link(l.Label, l.Href, "text-gray-600 hover:text-purple-600 transition-colors"))
		mobileLinks = append(mobileLinks,
			Link(l.Label, l.Href, "block text-gray-600 hover:text-purple-600 transition-colors py-2"))
	}
	mobileLinks = append(mobileLinks, Button(c.Nav.CTA, cx("w-full px-6 py-2", primaryButton)))

	return Nav(NavClasses(s.Scroll),
		Container("container mx-auto px-4 sm:px-6 flex items-center justify-between",
			Container("flex items-center space-x-2",
				Icon(c.Brand.Icon, "h-8 w-8 text-purple-600 animate-pulse"),
				Span(c.Brand.Name, "text-2xl font-bold text-gray-800"),
			),
			toggle,
			Container("hidden md:flex space-x-8", desktopLinks...),
			Button(c.Nav.CTA, cx("hidden md:block px-6 py-2 transform hover:scale-105", primaryButton)),
		),
		Container(MenuPanelClasses(s.Menu),
			Container("px-4 py-2 space-y-4", mobileLinks...),
		),
	)
}

func buildHero(c *Content) Widget {
	h := c.Hero

	title := Heading(1, "", "text-4xl sm:text-5xl md:text-6xl font-bold text-gray-900 mb-6 animate-fade-in")
	title.WithChildren(
		Span(h.TitleLead+" ", ""),
		Span(h.TitleAccent, "text-purple-600 animate-gradient bg-clip-text text-transparent bg-gradient-to-r from-purple-600 to-blue-500"),
		Span(" "+h.TitleTail, ""),
	)

	return Section("", "pt-32 pb-20 px-4 sm:px-6",
		Container("container mx-auto text-center",
			title,
			Text(h.Subtitle, "text-lg sm:text-xl text-gray-600 mb-8 max-w-2xl mx-auto animate-slide-up"),
			Container("flex flex-col sm:flex-row justify-center space-y-4 sm:space-y-0 sm:space-x-4 mb-16",
				Button(h.PrimaryCTA, cx("px-8 py-3 transition-all duration-300 transform hover:scale-105 flex items-center justify-center", primaryButton),
					Icon("chevron-right", "ml-2 h-5 w-5 animate-bounce"),
				),
				Button(h.SecondaryCTA, "border-2 border-purple-600 text-purple-600 px-8 py-3 rounded-full hover:bg-purple-50 transition-all duration-300 transform hover:scale-105"),
			),
			Image(h.ImageURL, h.ImageAlt, "rounded-xl shadow-2xl mx-auto max-w-4xl w-full transform hover:scale-[1.02] transition-transform duration-500 animate-fade-in"),
		),
	)
}

func buildFeatures(s State, c *Content) Widget {
	f := c.Features
	cards := make([]Widget, 0, len(f.Items))
	for i, item := range f.Items {
		card := Container("text-center p-6 rounded-xl hover:bg-purple-50 transition-all duration-300 transform hover:scale-105 hover:shadow-lg",
			Container("bg-purple-100 p-4 rounded-full w-16 h-16 flex items-center justify-center mx-auto mb-6 animate-bounce-slow",
				Icon(item.Icon, "h-8 w-8 text-purple-600"),
			),
			Heading(3, item.Title, "text-xl font-semibold mb-4"),
			Text(item.Description, "text-gray-600"),
		)
		card.WithAttr(AttrTransitionDelay, transitionDelay(i))
		cards = append(cards, card)
	}

	return Section(f.ID, SectionClasses("bg-white", s.Scroll.IsVisible(f.ID)),
		Container("container mx-auto px-4 sm:px-6",
			Heading(2, f.Heading, "text-3xl sm:text-4xl font-bold text-center text-gray-900 mb-16"),
			Container("grid sm:grid-cols-2 md:grid-cols-3 gap-8 md:gap-12", cards...),
		),
	)
}

func buildPricing(s State, c *Content) Widget {
	p := c.Pricing
	cards := make([]Widget, 0, len(p.Plans))
	for i, plan := range p.Plans {
		items := make([]Widget, 0, len(plan.Features))
		for _, feature := range plan.Features {
			items = append(items, ListItem("flex items-center",
				Icon("chevron-right", "h-5 w-5 text-purple-600 mr-2"),
				Span(feature, ""),
			))
		}

		card := Container("bg-white rounded-2xl shadow-lg p-8 transition-all duration-500 transform hover:scale-105 hover:shadow-xl",
			Heading(3, plan.Name, "text-2xl font-semibold mb-4"),
			Container("text-4xl font-bold mb-6",
				Span("$"+plan.Price, ""),
				Span(p.Period, "text-lg text-gray-500"),
			),
			List("space-y-4 mb-8", items...),
			Button(p.CTA, cx("w-full py-3 transition-all duration-300 transform hover:scale-105", primaryButton)),
		)
		card.WithAttr(AttrTransitionDelay, transitionDelay(i))
		cards = append(cards, card)
	}

	return Section(p.ID, SectionClasses("bg-gray-50", s.Scroll.IsVisible(p.ID)),
		Container("container mx-auto px-4 sm:px-6",
			Heading(2, p.Heading, "text-3xl sm:text-4xl font-bold text-center text-gray-900 mb-16"),
			Container("grid md:grid-cols-3 gap-8 max-w-5xl mx-auto", cards...),
		),
	)
}

func buildContact(s State, c *Content) Widget {
	ct := c.Contact

	info := Container("transform hover:scale-105 transition-transform duration-300",
		Heading(3, ct.InfoHeading, "text-2xl font-semibold mb-6"),
		Container("space-y-6",
			contactLine("mail", ct.Email),
			contactLine("phone", ct.Phone),
			contactLine("map-pin", ct.Address),
		),
	)

	rows := make([]Widget, 0, len(Fields)+1)
	for _, f := range Fields {
		rows = append(rows, formRow(f, s.Form, ct.Labels))
	}
	submit := Button(ct.SubmitLabel, cx("w-full py-3 transition-all duration-300 transform hover:scale-105", primaryButton))
	submit.WithAttr(AttrType, "submit").WithAttr(AttrAction, ActionSubmit)
	rows = append(rows, submit)

	return Section(ct.ID, SectionClasses("bg-white", s.Scroll.IsVisible(ct.ID)),
		Container("container mx-auto px-4 sm:px-6",
			Heading(2, ct.Heading, "text-3xl sm:text-4xl font-bold text-center text-gray-900 mb-16"),
			Container("grid md:grid-cols-2 gap-12 max-w-4xl mx-auto",
				info,
				Form("space-y-6 transform hover:scale-105 transition-transform duration-300", rows...),
			),
		),
	)
}

func contactLine(icon, text string) Widget {
	return Container("flex items-center group",
		Icon(icon, "h-6 w-6 text-purple-600 mr-4 group-hover:scale-110 transition-transform"),
		Span(text, "group-hover:text-purple-600 transition-colors"),
	)
}

// formRow renders a label, the input and, when the last submit flagged the
// field, its error message.
func formRow(f Field, form ContactForm, labels FieldLabels) Widget {
	invalid := form.Errors.Has(f)

	var input Widget
	switch f {
	case FieldMessage:
		input = TextArea(f, form.Value(f), 4, InputClasses(invalid))
	case FieldEmail:
		input = TextField(f, "email", form.Value(f), InputClasses(invalid))
	default:
		input = TextField(f, "text", form.Value(f), InputClasses(invalid))
	}

	children := []Widget{
		Label(labels.For(f), "block text-sm font-medium text-gray-700 mb-2"),
		input,
	}
	if invalid {
		children = append(children, FieldErrorText(form.Errors.Message(f), errorTextClasses))
	}
	return Container("", children...)
}

func buildFooter(c *Content, opts ViewOptions) Widget {
	links := make([]Widget, 0, len(c.Footer.Links))
	for _, l := range c.Footer.Links {
		links = append(links, Link(l.Label, l.Href, "hover:text-purple-400 transition-colors transform hover:scale-105"))
	}

	copyright := "© " + c.Brand.Name + ". " + c.Footer.Rights
	if opts.Year > 0 {
		copyright = "© " + strconv.Itoa(opts.Year) + " " + c.Brand.Name + ". " + c.Footer.Rights
	}

	return Footer("bg-gray-900 text-white py-12",
		Container("container mx-auto px-4 sm:px-6",
			Container("flex flex-col md:flex-row justify-between items-center",
				Container("flex items-center space-x-2 mb-6 md:mb-0 transform hover:scale-105 transition-transform",
					Icon(c.Brand.Icon, "h-8 w-8 text-purple-400 animate-pulse"),
					Span(c.Brand.Name, "text-2xl font-bold"),
				),
				Container("flex flex-wrap justify-center space-x-6", links...),
			),
			Text(copyright, "mt-8 text-center text-gray-400"),
		),
	)
}

// transitionDelay staggers card reveals by 100ms per index.
func transitionDelay(index int) string {
	return strconv.Itoa(index*100) + "ms"
}
