package app

import (
	"github.com/felixbrock/vidcaption/internal/components"
)

type errCtx struct {
	Code  int
	Title string
	Msg   string
}

func get400() errCtx {
	return errCtx{
		Code:  400,
		Title: "Bad request",
		Msg:   "Sorry, we couldn't read the video you uploaded.",
	}
}

func get404() errCtx {
	return errCtx{
		Code:  404,
		Title: "Not found",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get405() errCtx {
	return errCtx{
		Code:  405,
		Title: "Method not allowed",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get413() errCtx {
	return errCtx{
		Code:  413,
		Title: "Upload too large",
		Msg:   "Sorry, that video is larger than we can caption.",
	}
}

func get429() errCtx {
	return errCtx{
		Code:  429,
		Title: "Too many requests",
		Msg:   "You are uploading too quickly. Please wait a minute and try again.",
	}
}

func get500() errCtx {
	return errCtx{
		Code:  500,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}

func (a *App) errorResponse(ctx errCtx, err error) *ComponentResponse {
	return &ComponentResponse{
		Error:     err,
		Message:   ctx.Title,
		Code:      ctx.Code,
		Component: a.page(ctx.Title, components.ErrorMessage(ctx.Code, ctx.Title, ctx.Msg)),
	}
}
