// Package typecast converts typed-literal strings into native JSON values.
//
// JSON configuration cannot say "this field is a number" when the field's
// value is itself a ${variable}. Instead the string carries a prefix that is
// honored after substitution:
//
//	"id":     "number:${user_id}"  ->  "id": 50
//	"active": "bool:${flag}"       ->  "active": true
//
// Strings without a recognized prefix and all non-string values are left as
// they are.
package typecast
