package compiler

// Compile runs the whole pipeline: Lex, Parse, Transform, Generate.
// The first lex or parse error is returned unchanged and no output is produced.
func Compile(src string) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", err
	}

	prog, err := Parse(tokens)
	if err != nil {
		return "", err
	}

	return Generate(Transform(prog))
}
