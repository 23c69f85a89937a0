package app

// Exported for black-box tests of the report.
var CurrentKeyExported = currentKey
