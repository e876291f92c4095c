package token

// SignInput is the body of POST /tokens.
type SignInput struct {
	Claims map[string]any
	Key    string
	Alg    string
}

type SignOutput struct {
	Token string
}

type VerifyInput struct {
	Token string
	Key   string
}

type VerifyOutput struct {
	Alg    string
	Header map[string]any
	Claims map[string]any
}

// CodecInput carries the raw argument list so arity errors reach the caller.
type CodecInput struct {
	Args []string
}

type CodecOutput struct {
	Value string
}
