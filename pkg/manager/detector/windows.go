package detector

// WindowsManagers lists the Windows backends in preference order. The first
// one found on PATH is selected; winget is assumed when none is found.
var WindowsManagers = []string{"winget", "choco", "scoop"}
