package collections

// TransformSlice maps an input slice to an output slice using a transformation function.
func TransformSlice[In any, Out any](in []In, transformationFunc func(value In) (transformed Out)) (out []Out) {
	if in == nil {
		return nil
	}
	out = make([]Out, len(in))
	for i, v := range in {
		out[i] = transformationFunc(v)
	}
	return out
}
