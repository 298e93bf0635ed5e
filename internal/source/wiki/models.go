package wiki

// APIResponse is the list=usercontribs response in formatversion=2.
type APIResponse struct {
	Continue map[string]string `json:"continue"`
	Query    *Query            `json:"query"`
	Error    *APIError         `json:"error"`
}

type Query struct {
	UserContribs []Contribution `json:"usercontribs"`
}

type Contribution struct {
	UserID    int64  `json:"userid"`
	User      string `json:"user"`
	PageID    int64  `json:"pageid"`
	RevID     int64  `json:"revid"`
	ParentID  int64  `json:"parentid"`
	Namespace int    `json:"ns"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
	New       bool   `json:"new"`
	Size      int64  `json:"size"`
	SizeDiff  *int64 `json:"sizediff"`
}

// APIError is returned by MediaWiki in place of a query result.
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return "mediawiki api error " + e.Code + ": " + e.Info
}
