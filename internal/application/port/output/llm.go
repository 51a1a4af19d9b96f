package output

import (
	"context"

	"yuki/internal/domain/entity"
)

// OraclePort is the reasoning oracle: role-tagged messages in, one
// assistant message out. The content embeds the delimited structure
// (<evaluate>, <plan>, <thought>, <action_name>, <action_input>) that
// the agent parser extracts; this port treats it as opaque text.
type OraclePort interface {
	Converse(ctx context.Context, messages []entity.Message) (string, error)
}
