package instance

import (
	"errors"

	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/zerr"
)

func accessFailed(err error, p domain.Param) error {
	return errors.Join(domain.ErrParameterAccessFailed, zerr.With(err, "param", p.String()))
}

func getString(params ports.ParameterAccess, p domain.Param) (string, error) {
	v, err := params.GetString(p)
	if err != nil {
		return "", accessFailed(err, p)
	}
	return v, nil
}

func getBool(params ports.ParameterAccess, p domain.Param) (bool, error) {
	v, err := params.GetBool(p)
	if err != nil {
		return false, accessFailed(err, p)
	}
	return v, nil
}

func getFloat(params ports.ParameterAccess, p domain.Param) (float64, error) {
	v, err := params.GetFloat(p)
	if err != nil {
		return 0, accessFailed(err, p)
	}
	return v, nil
}

func setString(params ports.ParameterAccess, p domain.Param, v string) error {
	if err := params.SetString(p, v); err != nil {
		return accessFailed(err, p)
	}
	return nil
}

func setBool(params ports.ParameterAccess, p domain.Param, v bool) error {
	if err := params.SetBool(p, v); err != nil {
		return accessFailed(err, p)
	}
	return nil
}

func setFloat(params ports.ParameterAccess, p domain.Param, v float64) error {
	if err := params.SetFloat(p, v); err != nil {
		return accessFailed(err, p)
	}
	return nil
}

func setInt(params ports.ParameterAccess, p domain.Param, v int32) error {
	if err := params.SetInt(p, v); err != nil {
		return accessFailed(err, p)
	}
	return nil
}

// outputSize reads the output size parameters.
func outputSize(params ports.ParameterAccess) (domain.Size, error) {
	w, err := getFloat(params, domain.ParamOutputWidth)
	if err != nil {
		return domain.Size{}, err
	}
	h, err := getFloat(params, domain.ParamOutputHeight)
	if err != nil {
		return domain.Size{}, err
	}
	return domain.Size{Width: int(w), Height: int(h)}, nil
}
