package errors

import "github.com/lyraproj/issue/issue"

const (
	AmbiguousMatch  = `QUERY_AMBIGUOUS_MATCH`
	DuplicateKey    = `QUERY_DUPLICATE_KEY`
	EmptySource     = `QUERY_EMPTY_SOURCE`
	FrozenHash      = `QUERY_FROZEN_HASH`
	InvalidShape    = `QUERY_INVALID_SHAPE`
	MissingArgument = `QUERY_MISSING_ARGUMENT`
	NoMatch         = `QUERY_NO_MATCH`
	NotRestartable  = `QUERY_NOT_RESTARTABLE`
	NumericOverflow = `QUERY_NUMERIC_OVERFLOW`
	OutOfRange      = `QUERY_OUT_OF_RANGE`
	ParseError      = `QUERY_PARSE_ERROR`
)

func init() {
	issue.Hard(AmbiguousMatch, `%{operator}(): sequence contains more than one matching element`)

	issue.Hard(DuplicateKey, `%{operator}(): an element with the key '%{key}' has already been added`)

	issue.Hard(EmptySource, `%{operator}(): sequence contains no elements`)

	issue.Hard(FrozenHash, `attempt to add, modify, or delete key '%{key}' in a frozen hash`)

	issue.Hard(InvalidShape, `%{operator}(): %{detail}`)

	issue.Hard(MissingArgument, `%{operator}(): missing required argument '%{name}'`)

	issue.Hard(NoMatch, `%{operator}(): sequence contains no matching element`)

	issue.Hard(NotRestartable, `%{operator}(): source can only be traversed once`)

	issue.Hard(NumericOverflow, `%{operator}(): result exceeds the representable range of %{type}`)

	issue.Hard(OutOfRange, `%{operator}(): argument '%{name}' is out of range, got %{value}`)

	issue.Hard(ParseError, `Unable to parse %{language}: %{detail}`)
}
