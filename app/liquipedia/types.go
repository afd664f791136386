package liquipedia

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

// Records returned by the LiquipediaDB v3 API. Upstream is loose with
// scalar types (numbers arrive as strings and vice versa), so the odd
// fields get their own unmarshalers and everything downstream works with
// proper Go types.

type Tournament struct {
	PageName   string    `json:"pagename"`
	Name       string    `json:"name"`
	ShortName  string    `json:"shortname"`
	TickerName string    `json:"tickername"`
	Series     string    `json:"series"`
	Parent     string    `json:"parent"`
	StartDate  Timestamp `json:"startdate"`
	EndDate    Timestamp `json:"enddate"`
	IconURL    string    `json:"iconurl"`
	IconDark   string    `json:"icondarkurl"`
}

type Match struct {
	PageName   string     `json:"pagename"`
	Tournament string     `json:"tournament"`
	ShortName  string     `json:"shortname"`
	TickerName string     `json:"tickername"`
	Series     string     `json:"series"`
	Parent     string     `json:"parent"`
	Date       Timestamp  `json:"date"`
	Finished   Flag       `json:"finished"`
	Winner     Slot       `json:"winner"`
	Opponents  []Opponent `json:"match2opponents"`
	Streams    []Stream   `json:"streams"`
	IconURL    string     `json:"iconurl"`
	IconDark   string     `json:"icondarkurl"`
}

type Opponent struct {
	Name  string `json:"name"`
	Score *Score `json:"score"`
}

type Stream struct {
	URL string `json:"url"`
}

type Team struct {
	PageName string `json:"pagename"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	Status   string `json:"status"`
	LogoURL  string `json:"logourl"`
	LogoDark string `json:"logodarkurl"`
}

type Player struct {
	PageName    string `json:"pagename"`
	ID          string `json:"id"`
	TeamPage    string `json:"teampagename"`
	Status      string `json:"status"`
	Nationality string `json:"nationality"`
	Earnings    Score  `json:"earnings"`
}

type Transfer struct {
	Player   string    `json:"player"`
	FromTeam string    `json:"fromteam"`
	ToTeam   string    `json:"toteam"`
	Role     string    `json:"role1"`
	Date     Timestamp `json:"date"`
}

// Timestamp accepts the "2006-01-02 15:04:05" format the v3 API uses, as
// well as bare dates and RFC 3339. A zero or unparseable value decodes to
// the zero time rather than failing the whole document.
type Timestamp struct {
	time.Time
}

var timeFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" || strings.HasPrefix(s, "0000") {
		t.Time = time.Time{}
		return nil
	}
	for _, format := range timeFormats {
		if parsed, err := time.Parse(format, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

// Flag decodes the API's 0/1 flags, which appear both as numbers and as
// strings.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*f = s == "1" || s == "true"
	return nil
}

// Slot is a 1-based opponent index; 0 means no winner was recorded.
type Slot int

func (s *Slot) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	n, err := strconv.Atoi(str)
	if err != nil || n < 1 || n > 2 {
		*s = 0
		return nil
	}
	*s = Slot(n)
	return nil
}

// Score tolerates both numeric and quoted-numeric encodings. -1 marks a
// missing score upstream.
type Score int

func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		*s = 0
		return nil
	}
	*s = Score(n)
	return nil
}

func (o Opponent) HasScore() bool {
	return o.Score != nil && *o.Score >= 0
}

func (o Opponent) ScoreValue() int {
	if o.Score == nil {
		return 0
	}
	return int(*o.Score)
}
