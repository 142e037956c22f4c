package catalog

import "fmt"

// ActionType names one kind of automation action.
type ActionType string

const (
	ActionEmail       ActionType = "email"
	ActionSlack       ActionType = "slack"
	ActionMSTeams     ActionType = "msteams"
	ActionDiscord     ActionType = "discord"
	ActionPagerduty   ActionType = "pagerduty"
	ActionOpsgenie    ActionType = "opsgenie"
	ActionWebhook     ActionType = "webhook"
	ActionIntegration ActionType = "integration"
	ActionJira        ActionType = "jira"
	ActionAzureDevops ActionType = "azure_devops"
	ActionGithub      ActionType = "github"
)

// ActionTypes returns every declared action type.
func ActionTypes() []ActionType {
	return []ActionType{
		ActionEmail,
		ActionSlack,
		ActionMSTeams,
		ActionDiscord,
		ActionPagerduty,
		ActionOpsgenie,
		ActionWebhook,
		ActionIntegration,
		ActionJira,
		ActionAzureDevops,
		ActionGithub,
	}
}

func (a ActionType) Valid() bool {
	_, ok := actions[a]
	return ok
}

// Meta is what the automations drawer renders for one action type.
// Ticketing marks the actions that file a ticket in an external
// tracker instead of sending a notification.
type Meta struct {
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Ticketing bool   `json:"ticketing,omitempty"`
}

// actions must cover ActionTypes exactly, checked by Validate at
// startup. Unlike the icon table there is no placeholder here, an
// action type without metadata cannot be rendered at all.
var actions = map[ActionType]Meta{
	ActionEmail:       {Label: "Email", Icon: "icon-mail"},
	ActionSlack:       {Label: "Slack", Icon: "icon-slack"},
	ActionMSTeams:     {Label: "Microsoft Teams", Icon: "icon-msteams"},
	ActionDiscord:     {Label: "Discord", Icon: "icon-discord"},
	ActionPagerduty:   {Label: "Pagerduty", Icon: "icon-pagerduty"},
	ActionOpsgenie:    {Label: "Opsgenie", Icon: "icon-opsgenie"},
	ActionWebhook:     {Label: "Webhook", Icon: "icon-webhooks"},
	ActionIntegration: {Label: "Integration", Icon: "icon-plugin"},
	ActionJira:        {Label: "Jira", Icon: "icon-jira", Ticketing: true},
	ActionAzureDevops: {Label: "Azure DevOps", Icon: "icon-vsts", Ticketing: true},
	ActionGithub:      {Label: "GitHub", Icon: "icon-github", Ticketing: true},
}

// Action returns the metadata of one action type.
func Action(a ActionType) (Meta, error) {
	meta, ok := actions[a]
	if !ok {
		return Meta{}, fmt.Errorf("unknown action type: %s", a)
	}
	return meta, nil
}

// Actions returns a copy of the whole action table.
func Actions() map[ActionType]Meta {
	out := make(map[ActionType]Meta, len(actions))
	for a, meta := range actions {
		out[a] = meta
	}
	return out
}

// Validate checks the action table and the declared action types cover
// each other. Run once at startup.
func Validate() error {
	for _, a := range ActionTypes() {
		if _, ok := actions[a]; !ok {
			return fmt.Errorf("action type %s has no metadata", a)
		}
	}
	declared := make(map[ActionType]bool, len(actions))
	for _, a := range ActionTypes() {
		declared[a] = true
	}
	for a := range actions {
		if !declared[a] {
			return fmt.Errorf("metadata for undeclared action type %s", a)
		}
	}
	return nil
}
