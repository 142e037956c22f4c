// Package catalog serves the static lookup tables the frontend reads
// at boot, plugin icons and automation action metadata.
package catalog

// PlaceholderIcon is returned for any plugin the table does not know.
// This is the one lookup in the package that falls back instead of
// failing, third-party plugins appear here before we ship an icon.
const PlaceholderIcon = "icon-plugin"

// icons maps a plugin id to the icon asset the frontend renders.
var icons = map[string]string{
	"asana":     "icon-asana",
	"bitbucket": "icon-bitbucket",
	"discord":   "icon-discord",
	"github":    "icon-github",
	"gitlab":    "icon-gitlab",
	"heroku":    "icon-heroku",
	"jira":      "icon-jira",
	"msteams":   "icon-msteams",
	"opsgenie":  "icon-opsgenie",
	"pagerduty": "icon-pagerduty",
	"pivotal":   "icon-pivotal",
	"pushover":  "icon-pushover",
	"redmine":   "icon-redmine",
	"slack":     "icon-slack",
	"trello":    "icon-trello",
	"twilio":    "icon-twilio",
	"victorops": "icon-victorops",
	"vsts":      "icon-vsts",
	"webhooks":  "icon-webhooks",
}

// Icon returns the icon asset of a plugin, or the placeholder for
// plugins the table does not carry.
func Icon(plugin string) string {
	if icon, ok := icons[plugin]; ok {
		return icon
	}
	return PlaceholderIcon
}

// Icons returns a copy of the whole icon table.
func Icons() map[string]string {
	out := make(map[string]string, len(icons))
	for plugin, icon := range icons {
		out[plugin] = icon
	}
	return out
}
