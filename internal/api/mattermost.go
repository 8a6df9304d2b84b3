package api

// commandResponse is the payload shape Mattermost expects back from a
// slash-command webhook.
type commandResponse struct {
	Text         string `json:"text"`
	ResponseType string `json:"response_type"`
}

const (
	responseTypeInChannel = "in_channel"
	responseTypeEphemeral = "ephemeral"
)

// inChannel wraps markdown so the reply is visible to the whole channel.
func inChannel(markdown string) commandResponse {
	return commandResponse{Text: markdown, ResponseType: responseTypeInChannel}
}

// ephemeral wraps markdown so only the invoking user sees the reply.
// Not served today; kept for slash commands that should not spam the
// channel.
func ephemeral(markdown string) commandResponse {
	return commandResponse{Text: markdown, ResponseType: responseTypeEphemeral}
}
