package inference

// BoolParameter wraps a boolean value as an inference parameter.
func BoolParameter(v bool) *InferParameter {
	return &InferParameter{
		ParameterChoice: &InferParameter_BoolParam{BoolParam: v},
	}
}

// Int64Parameter wraps an integer value as an inference parameter.
func Int64Parameter(v int64) *InferParameter {
	return &InferParameter{
		ParameterChoice: &InferParameter_Int64Param{Int64Param: v},
	}
}

// StringParameter wraps a string value as an inference parameter.
func StringParameter(v string) *InferParameter {
	return &InferParameter{
		ParameterChoice: &InferParameter_StringParam{StringParam: v},
	}
}
