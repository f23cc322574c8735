package usecase

import "newsroom/internal/entity"

// Action enumerates every gated operation.
type Action int

const (
	ActionCreateArticle Action = iota
	ActionUpdateArticle
	ActionDeleteArticle
	ActionApproveArticle
	ActionCreateNewsletter
	ActionApproveNewsletter
	ActionManagePublishers
	ActionSubscribe
	ActionUnsubscribe
)

// Allowed is the access gate: a stateless predicate over the closed role set.
// The article argument is consulted only for ownership-scoped actions and may
// be nil otherwise.
func Allowed(actor entity.Actor, action Action, article *entity.Article) bool {
	switch action {
	case ActionCreateArticle, ActionCreateNewsletter:
		return actor.Role == entity.RoleJournalist
	case ActionApproveArticle, ActionApproveNewsletter, ActionManagePublishers:
		return actor.Role == entity.RoleEditor
	case ActionUpdateArticle, ActionDeleteArticle:
		if actor.Role == entity.RoleEditor {
			return true
		}
		return actor.Role == entity.RoleJournalist && article != nil && article.CreatedBy == actor.ID
	case ActionSubscribe, ActionUnsubscribe:
		return actor.Role == entity.RoleReader
	}
	return false
}
