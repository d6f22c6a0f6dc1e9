package schema

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	argumentsBlockToken
	parametersBlockToken
)

var (
	whitespaceMatcher      = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	argumentsBlockMatcher  = parsly.NewToken(argumentsBlockToken, "< .... >", matcher.NewBlock('<', '>', '\\'))
	parametersBlockMatcher = parsly.NewToken(parametersBlockToken, "( .... )", matcher.NewBlock('(', ')', '\\'))
)
