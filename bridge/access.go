package bridge

// AccessControl holds the single admin identity and the set of managers
// allowed to execute completion/refund transitions. The machine only ever
// reads it; mutations are admin-gated here so a failed authorization leaves
// the sets untouched.
type AccessControl struct {
	admin    string
	managers map[string]bool
}

func NewAccessControl(admin string, managers []string) *AccessControl {
	ac := &AccessControl{
		admin:    admin,
		managers: make(map[string]bool),
	}
	for _, m := range managers {
		ac.managers[m] = true
	}
	return ac
}

func (a *AccessControl) IsAdmin(identity string) bool {
	return identity != "" && identity == a.admin
}

func (a *AccessControl) IsManager(identity string) bool {
	return a.managers[identity]
}

// SetAdmin transfers the admin role. Only the current admin may call.
func (a *AccessControl) SetAdmin(caller, newAdmin string) error {
	if !a.IsAdmin(caller) {
		return ErrUnauthorized
	}
	a.admin = newAdmin
	return nil
}

func (a *AccessControl) AddManager(caller, identity string) error {
	if !a.IsAdmin(caller) {
		return ErrUnauthorized
	}
	a.managers[identity] = true
	return nil
}

func (a *AccessControl) RemoveManager(caller, identity string) error {
	if !a.IsAdmin(caller) {
		return ErrUnauthorized
	}
	delete(a.managers, identity)
	return nil
}
