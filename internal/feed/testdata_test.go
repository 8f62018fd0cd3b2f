package feed

import (
	"fmt"
	"html"
	"io"
	"log/slog"
)

const sampleSummary = `<div><u>Who We Are</u></div>
<div>We are an online brokerage focused on the ultimate trading experience.</div>
<div><u>What We Are Looking For</u></div>
<div>A backend engineer who likes <i>low-latency</i> systems &amp; clear APIs.</div>
<div><u>What You&rsquo;ll Be Doing</u></div>
<ul><li>Design order routing services</li><li>Mentor engineers</li></ul>
<div><u>The Skills You Bring</u></div>
<ul><li>Go</li><li>Kafka</li></ul>
<div><u>Minimum Qualifications</u></div>
<ul><li>5+ years building distributed systems</li></ul>
<div><u>What We Offer</u></div>
<ul><li>Collaborative work environment</li><li>401(k) match</li></ul>`

func entryXML(id, title, jobID, published, extra string) string {
	return fmt.Sprintf(`<entry>
<id>%s</id>
<title>%s</title>
<updated>2024-05-02T10:00:00Z</updated>
<published>%s</published>
<category term="Engineering"/>
<summary type="html">%s</summary>
<newton:jobId>%s</newton:jobId>
%s
</entry>
`, id, title, published, html.EscapeString(sampleSummary), jobID, extra)
}

const feedHeader = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:newton="http://newton.newtonsoftware.com/">
<title>Careers Feed</title>
<updated>2024-05-03T00:00:00Z</updated>
`

func sampleFeed(entries ...string) string {
	body := feedHeader
	for _, e := range entries {
		body += e
	}
	return body + "</feed>\n"
}

const chicagoHybrid = `<newton:department>Technology</newton:department>
<newton:location>Chicago</newton:location>
<newton:state>IL</newton:state>
<newton:country>United States</newton:country>
<newton:postal_code>60606</newton:postal_code>
<newton:remotetype>Hybrid - 2 days</newton:remotetype>`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testParser() *Parser {
	return NewParser(Links{BaseURL: "https://jobs.example.com/career", ClientID: "client1"}, "", discardLogger())
}
