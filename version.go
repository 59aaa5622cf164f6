package fold

// Version is the release version reported by the command.
const Version = "1.0.0"
