package test

import "go.uber.org/mock/gomock"

func NewMatcher(customMatcher func(arg any) bool) gomock.Matcher {
	return matcherCustomizer{customMatcher}
}

type matcherCustomizer struct {
	matcherFunction func(arg any) bool
}

func (o matcherCustomizer) Matches(x any) bool {
	return o.matcherFunction(x)
}

func (o matcherCustomizer) String() string {
	return "[call back function matcher has returned false]"
}
