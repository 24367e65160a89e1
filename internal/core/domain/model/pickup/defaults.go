package pickup

import "strings"

// Options carries the optional inputs of a new pickup. Nil or blank values
// are replaced from Defaults when the pickup is constructed.
type Options struct {
	AdditionalNotes       *string
	AssignedVolunteerID   *string
	AssignedVolunteerName *string
	WasteTypes            []string
}

// Defaults holds the values given to optional fields the caller left out.
type Defaults struct {
	AdditionalNotes       string
	AssignedVolunteerName string
	WasteTypes            []string
}

// StandardDefaults are the defaults of the pickup schema: empty notes, no
// volunteer name and no waste types.
func StandardDefaults() Defaults {
	return Defaults{
		AdditionalNotes:       "",
		AssignedVolunteerName: "",
		WasteTypes:            []string{},
	}
}

type resolvedOptions struct {
	additionalNotes       string
	assignedVolunteerID   *string
	assignedVolunteerName string
	wasteTypes            []string
}

func (d Defaults) resolve(o Options) resolvedOptions {
	r := resolvedOptions{
		additionalNotes:       d.AdditionalNotes,
		assignedVolunteerName: d.AssignedVolunteerName,
		wasteTypes:            cleanWasteTypes(d.WasteTypes),
	}
	if v, ok := present(o.AdditionalNotes); ok {
		r.additionalNotes = v
	}
	if v, ok := present(o.AssignedVolunteerID); ok {
		id := strings.TrimSpace(v)
		r.assignedVolunteerID = &id
	}
	if v, ok := present(o.AssignedVolunteerName); ok {
		r.assignedVolunteerName = v
	}
	if wt := cleanWasteTypes(o.WasteTypes); len(wt) > 0 {
		r.wasteTypes = wt
	}
	return r
}

func present(v *string) (string, bool) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", false
	}
	return *v, true
}

// cleanWasteTypes drops blank entries and always returns a non-nil slice.
func cleanWasteTypes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
