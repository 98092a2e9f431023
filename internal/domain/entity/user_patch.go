package entity

// Columnas actualizables de users.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldFullName = "full_name"
	FieldRole     = "role"
)

// UserPatch actualización parcial de un User: nil o "" significa "no enviado".
type UserPatch struct {
	Username *string
	Email    *string
	FullName *string
	Role     *string
}

// PatchField columna enviada junto con su nuevo valor.
type PatchField struct {
	Column string
	Value  string
}

// Fields enumera los campos enviados en orden fijo (username, email, full_name, role).
func (p UserPatch) Fields() []PatchField {
	var out []PatchField
	if supplied(p.Username) {
		out = append(out, PatchField{Column: FieldUsername, Value: *p.Username})
	}
	if supplied(p.Email) {
		out = append(out, PatchField{Column: FieldEmail, Value: *p.Email})
	}
	if supplied(p.FullName) {
		out = append(out, PatchField{Column: FieldFullName, Value: *p.FullName})
	}
	if supplied(p.Role) {
		out = append(out, PatchField{Column: FieldRole, Value: *p.Role})
	}
	return out
}

// IsEmpty true si no se envió ningún campo.
func (p UserPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Apply copia los campos enviados sobre u (usado por stores en memoria).
func (p UserPatch) Apply(u *User) {
	if supplied(p.Username) {
		u.Username = *p.Username
	}
	if supplied(p.Email) {
		u.Email = *p.Email
	}
	if supplied(p.FullName) {
		u.FullName = *p.FullName
	}
	if supplied(p.Role) {
		u.Role = *p.Role
	}
}

func supplied(v *string) bool {
	return v != nil && *v != ""
}
