package entities

// LoginSession is the result of a successful Google sign-in.
type LoginSession struct {
	Token string
	User  User
}
