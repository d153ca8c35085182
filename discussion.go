package canvasmcp

// DiscussionTopic is a course discussion topic.
type DiscussionTopic struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	PostedAt    string `json:"posted_at,omitempty"`
	LastReplyAt string `json:"last_reply_at,omitempty"`
	ReplyCount  int    `json:"reply_count"`
	UnreadCount int    `json:"unread_count"`
	HTMLURL     string `json:"html_url,omitempty"`
}

// DiscussionList wraps a discussion topic listing, most recently active
// first.
type DiscussionList struct {
	Topics   []DiscussionTopic `json:"topics"`
	Count    int               `json:"count"`
	Advisory *Advisory         `json:"advisory,omitempty"`
}

// DiscussionReply is one reply in an entry's recent-reply preview.
type DiscussionReply struct {
	Author    string `json:"author,omitempty"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DiscussionEntry is a top-level entry in a discussion topic. RecentReplies
// is the bounded preview Canvas embeds in the entry; no further replies are
// fetched.
type DiscussionEntry struct {
	ID            int               `json:"id"`
	Author        string            `json:"author,omitempty"`
	Message       string            `json:"message,omitempty"`
	CreatedAt     string            `json:"created_at,omitempty"`
	RecentReplies []DiscussionReply `json:"recent_replies,omitempty"`
}

// EntryList wraps a discussion entry listing.
type EntryList struct {
	Entries  []DiscussionEntry `json:"entries"`
	Count    int               `json:"count"`
	Advisory *Advisory         `json:"advisory,omitempty"`
}
