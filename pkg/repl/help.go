package repl

const helpText = `Usage:
  <operation> <number> <number>

Operations:
  add        add two numbers
  subtract   subtract the second number from the first
  multiply   multiply two numbers
  divide     divide the first number by the second

Commands:
  help       show this message
  history    show the calculations of this session, oldest first
  clear      discard the recorded history
  exit       leave the calculator (quit also works)

Examples:
  add 10 5
  subtract 15.5 3.2
  multiply 7 8
  divide 20 4
`
