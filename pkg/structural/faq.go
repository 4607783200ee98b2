package structural

import (
	"regexp"

	"github.com/dtnitsch/blog-analyzer/models"
)

var (
	faqHeadingRe = regexp.MustCompile(`(?i)#{1,3}\s*(?:FAQ|Frequently Asked)`)
	faqSchemaRe  = regexp.MustCompile(`(?i)FAQSchema|FAQPage|faqpage`)
	faqItemRe    = regexp.MustCompile(`(?m)^#{3,4}\s+.+\?`)
)

// AnalyzeFAQ detects an FAQ section heading (levels 1-3) and counts
// question headings from that point to the end of the document.
func AnalyzeFAQ(body string) *models.FAQInfo {
	info := &models.FAQInfo{
		HasFAQSection: faqHeadingRe.MatchString(body),
		HasFAQSchema:  faqSchemaRe.MatchString(body),
	}
	if info.HasFAQSection {
		if loc := faqHeadingRe.FindStringIndex(body); loc != nil {
			info.FAQItemCount = len(faqItemRe.FindAllString(body[loc[0]:], -1))
		}
	}
	return info
}
