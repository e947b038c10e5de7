package pallet

import (
	"fmt"
	"reflect"
)

type ComponentNotFoundError struct {
	Name string
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("no component registered under name %q", e.Name)
}

type ComponentMissingError struct {
	Entity    Entity
	Component ComponentID
}

func (e ComponentMissingError) Error() string {
	return fmt.Sprintf("entity %d does not have component %d", e.Entity, e.Component)
}

type ComponentLimitError struct{}

func (e ComponentLimitError) Error() string {
	return fmt.Sprintf("component registration limit reached (%d)", MaxComponents)
}

type DuplicateComponentError struct {
	Name string
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("component %q is already registered", e.Name)
}

type InvalidComponentError struct {
	Component ComponentID
}

func (e InvalidComponentError) Error() string {
	return fmt.Sprintf("component id %d was never registered", e.Component)
}

type EntityNotFoundError struct {
	Entity Entity
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.Entity)
}

type TypeMismatchError struct {
	Component  ComponentID
	Registered reflect.Type
	Requested  reflect.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("component %d holds %v, not %v", e.Component, e.Registered, e.Requested)
}
