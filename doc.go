// Package main runs teca-web, the website of the Twic East Community
// Association. The public pages show news, events, leadership and the
// resettlement fundraising of every payam. Signed in staff manage content,
// donations and pledges in the admin panel according to their role.
package main
