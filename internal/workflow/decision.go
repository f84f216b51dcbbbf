package workflow

type Decision int

const (
	Proceed Decision = iota
	Abort
	DeleteNow
	DeleteAsk
	SkipDelete
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case Abort:
		return "abort"
	case DeleteNow:
		return "delete now"
	case DeleteAsk:
		return "delete ask"
	case SkipDelete:
		return "skip delete"
	default:
		return "unknown"
	}
}

// DecideMove asks for confirmation unless skipConfirmation is set.
func DecideMove(skipConfirmation bool, ask func() bool) Decision {
	if skipConfirmation || ask() {
		return Proceed
	}
	return Abort
}

// DecideDelete decides what happens to the emptied source gallery.
// deleteGallery only counts together with skipConfirmation, without it the user is always asked.
func DecideDelete(skipConfirmation, deleteGallery bool) Decision {
	switch {
	case skipConfirmation && deleteGallery:
		return DeleteNow
	case !skipConfirmation:
		return DeleteAsk
	default:
		return SkipDelete
	}
}

// ResolveAsk turns DeleteAsk into DeleteNow or SkipDelete using the answer of ask.
func ResolveAsk(d Decision, ask func() bool) Decision {
	if d != DeleteAsk {
		return d
	}
	if ask() {
		return DeleteNow
	}
	return SkipDelete
}
