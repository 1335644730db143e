package app

import "github.com/jsamuelsen11/forumcore/internal/domain/forum"

// Failure codes returned under the "api" key.
const (
	CodeMemberBanned          = "member.banned"
	CodeMemberAlreadyBanned   = "member.already.banned"
	CodeMemberNotBanned       = "member.not.banned"
	CodeMemberAlreadyIgnored  = "member.already.ignored"
	CodeMemberNotIgnored      = "member.not.ignored"
	CodeMemberNoSelfIgnoring  = "member.no.self.ignoring"
	CodePostAlreadyLiked      = "post.already.liked"
	CodePostAlreadyDisliked   = "post.already.disliked"
	CodePostNotRated          = "post.not.rated"
	CodeThreadLocked          = "thread.locked"
	CodeThreadAlreadyLocked   = "thread.already.locked"
	CodeThreadNotLocked       = "thread.not.locked"
	CodeThreadSubscribed      = "thread.already.subscribed"
	CodeThreadNotSubscribed   = "thread.not.subscribed"
	CodeMessageNoSelfSending  = "message.no.self.sending"
	CodeMessageWrongReply     = "message.wrong.reply"
	CodeMessageReceiverReject = "message.receiver.rejected"
)

// Fault messages for secondary counter writes.
const (
	MsgPostCounters   = "Error while updating post counters!"
	MsgThreadCounters = "Error while updating thread counters!"
	MsgForumCounters  = "Error while updating forum counters!"
)

// kindCode builds a kind-scoped code such as "category.already.archived".
func kindCode(kind forum.Kind, suffix string) string {
	return string(kind) + "." + suffix
}
