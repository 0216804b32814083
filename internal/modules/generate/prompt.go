package generate

import (
	"fmt"
	"strings"
)

// Options is everything the prompt builder needs to describe one
// article. WordCount is kept as a string because it interpolates
// directly into the prompt text.
type Options struct {
	Topic             string
	PrimaryKeyword    string
	SecondaryKeywords string
	Audience          string
	Tone              string
	ArticleType       string
	WordCount         string
	IncludeFAQ        bool
	IncludeTOC        bool
}

var audienceMap = map[string]string{
	"beginner":     "beginners who are new to the topic",
	"intermediate": "readers with some existing knowledge",
	"expert":       "advanced professionals in the field",
	"general":      "a general audience with mixed experience levels",
}

var toneInstructions = map[string]string{
	"Professional":   "Use a professional, authoritative tone. Be clear and precise.",
	"Conversational": "Write in a friendly, conversational tone. Use 'you' and 'I' naturally.",
	"Academic":       "Use a formal, academic tone with well-structured arguments.",
	"Casual":         "Write in a relaxed, casual tone as if talking to a friend.",
}

var articleTypeInstructions = map[string]string{
	"How-to Guide": "Structure this as a step-by-step guide with numbered steps.",
	"Listicle":     "Structure this as a numbered list of key points or tips.",
	"Comparison":   "Compare different options, highlighting pros and cons of each.",
	"Opinion":      "Share a clear opinion with supporting arguments and evidence.",
	"Review":       "Provide an in-depth review with ratings and recommendations.",
	"Case Study":   "Present this as a case study with real-world examples and outcomes.",
}

const promptTemplate = `You are an expert content writer specializing in SEO-optimized blog posts. Write a blog post with the following requirements:

**TOPIC:** %s

**PRIMARY KEYWORD:** %s
(Use this keyword naturally 3-5 times throughout the article, including in the first paragraph)

%s

**TARGET AUDIENCE:** %s

**TONE:** %s

**ARTICLE TYPE:** %s

**LENGTH:** Approximately %s words

**STRUCTURE REQUIREMENTS:**
%s
- Use clear H2 and H3 headings to organize content
- Include an engaging introduction that hooks the reader
- Provide valuable, actionable information
- End with a strong conclusion
%s

**IMPORTANT GUIDELINES:**
1. Write as if you are a human expert with first-hand experience
2. Include specific examples, numbers, and details where possible
3. Avoid generic AI-sounding phrases like "In today's fast-paced world" or "Let's dive in"
4. Use personal anecdotes or "I" statements occasionally for authenticity
5. Make the content genuinely helpful and unique
6. Format with markdown (## for H2, ### for H3, **bold**, *italic*, bullet points, etc.)

Write the blog post now:`

// BuildPrompt renders the generation prompt. It is pure: the same
// options always produce byte-identical output. Unknown audience, tone,
// or article type values fall back to "general", "Professional", and
// "How-to Guide" respectively.
func BuildPrompt(opts Options) string {
	audience, ok := audienceMap[opts.Audience]
	if !ok {
		audience = audienceMap["general"]
	}
	tone, ok := toneInstructions[opts.Tone]
	if !ok {
		tone = toneInstructions["Professional"]
	}
	articleType, ok := articleTypeInstructions[opts.ArticleType]
	if !ok {
		articleType = articleTypeInstructions["How-to Guide"]
	}

	secondary := ""
	if strings.TrimSpace(opts.SecondaryKeywords) != "" {
		secondary = fmt.Sprintf("**SECONDARY KEYWORDS:** %s\n(Incorporate these naturally where relevant)", opts.SecondaryKeywords)
	}
	toc := ""
	if opts.IncludeTOC {
		toc = "- Start with a Table of Contents listing all main sections"
	}
	faq := ""
	if opts.IncludeFAQ {
		faq = "- Include a FAQ section with 3-4 relevant questions and answers at the end"
	}

	return fmt.Sprintf(promptTemplate,
		opts.Topic,
		opts.PrimaryKeyword,
		secondary,
		audience,
		tone,
		articleType,
		opts.WordCount,
		toc,
		faq,
	)
}
